package domain

import "fmt"

// ProfileFileName is the name of the profile file inside the application data directory
const ProfileFileName = "profile.json"

// Location selects where a profile is read from or written to: either a
// caller-supplied path or the standard path under the application data directory.
type Location struct {
	path     string
	explicit bool
}

// Explicit returns a Location that uses path verbatim
func Explicit(path string) Location {
	return Location{path: path, explicit: true}
}

// Standard returns a Location that resolves to the standard profile path
func Standard() Location {
	return Location{}
}

// Path returns the explicit path and true, or an empty string and false for
// the standard location.
func (l Location) Path() (string, bool) {
	return l.path, l.explicit
}

func (l Location) String() string {
	if !l.explicit {
		return "standard"
	}
	return fmt.Sprintf("explicit(%s)", l.path)
}
