package overlay_test

import (
	"fmt"

	"github.com/scopekit/scopekit/overlay"
)

func Example() {
	defaults := overlay.New[string]()
	defaults.Set("color", "auto")
	defaults.Set("verbosity", "info")

	session := defaults.NewChild()
	session.Set("verbosity", "debug")
	session.SetUndefined("color") // explicitly no color for this session

	v, _ := session.Get("verbosity")
	fmt.Println("verbosity =", v.Or("?"))

	color, present := session.Get("color")
	fmt.Println("color present:", present, "defined:", color.Defined())

	fmt.Println("visible keys:", session.Size())

	// Dropping the session override re-exposes the default.
	session.Delete("color")
	color, _ = session.Get("color")
	fmt.Println("color =", color.Or("?"))

	// Output:
	// verbosity = debug
	// color present: true defined: false
	// visible keys: 2
	// color = auto
}
