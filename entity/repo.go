package entity

import "fmt"

// Repo uniquely identifies a GitHub repository.
type Repo struct {
	Owner string
	Name  string
}

func (r *Repo) String() string {
	if r.Owner == "" && r.Name == "" {
		return ""
	}
	return fmt.Sprintf("%v/%v", r.Owner, r.Name)
}

// PullRequestURL returns the web URL of the given pull request in this
// repository.
func (r *Repo) PullRequestURL(number int) string {
	return fmt.Sprintf("https://github.com/%v/%v/pull/%v", r.Owner, r.Name, number)
}
