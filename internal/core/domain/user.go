package domain

import (
	"slices"
	"strings"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
)

const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// DefaultRole is assigned to every self-registered account.
const DefaultRole = RoleUser

// User is an account that can authenticate against the API.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Roles        RoleSet
	CreatedAt    time.Time
}

// RoleSet is an immutable set of role names. Adding a name twice keeps one
// entry. The zero value is an empty set.
type RoleSet struct {
	set mapset.Set[string]
}

// NewRoleSet builds a set from names, skipping blanks.
func NewRoleSet(names ...string) RoleSet {
	s := mapset.NewThreadUnsafeSet[string]()
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			s.Add(n)
		}
	}
	return RoleSet{set: s}
}

// Has reports exact membership of name.
func (r RoleSet) Has(name string) bool {
	return r.set != nil && r.set.Contains(name)
}

func (r RoleSet) Len() int {
	if r.set == nil {
		return 0
	}
	return r.set.Cardinality()
}

// With returns a new set containing r plus names.
func (r RoleSet) With(names ...string) RoleSet {
	return NewRoleSet(append(r.Names(), names...)...)
}

// Without returns a new set containing r minus name.
func (r RoleSet) Without(name string) RoleSet {
	out := NewRoleSet(r.Names()...)
	out.set.Remove(name)
	return out
}

// Equal reports whether both sets hold the same names.
func (r RoleSet) Equal(other RoleSet) bool {
	if r.Len() != other.Len() {
		return false
	}
	if r.Len() == 0 {
		return true
	}
	return r.set.Equal(other.set)
}

// Names returns the members in lexical order.
func (r RoleSet) Names() []string {
	if r.set == nil {
		return []string{}
	}
	names := r.set.ToSlice()
	slices.Sort(names)
	return names
}
