package setup

import "errors"

var installGuide = []string{
	"Please install MongoDB first:",
	"   Windows: https://docs.mongodb.com/manual/tutorial/install-mongodb-on-windows/",
	"   macOS: brew install mongodb-community",
	"   Linux: https://docs.mongodb.com/manual/administration/install-on-linux/",
}

var startGuide = []string{
	"Please start MongoDB service:",
	"   Windows: net start MongoDB",
	"   macOS/Linux: brew services start mongodb-community",
	"   Or: mongod --dbpath /path/to/data/directory",
}

// Guidance returns the operator instructions matching a setup error, or nil when
// there is nothing actionable to suggest.
func Guidance(err error) []string {
	switch {
	case errors.Is(err, ErrNotInstalled):
		return installGuide
	case errors.Is(err, ErrUnreachable):
		return startGuide
	default:
		return nil
	}
}
