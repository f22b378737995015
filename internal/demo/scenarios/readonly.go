package scenarios

import "github.com/zhubert/caesar/internal/demo"

// ReadOnlyOutput shows that typing into the output field changes nothing.
var ReadOnlyOutput = &demo.Scenario{
	Name:        "read-only",
	Description: "Edits to the output field are discarded",
	Width:       100,
	Height:      30,
	Setup: &demo.ScenarioSetup{
		Shift:     3,
		Direction: "encrypt",
	},
	Steps: []demo.Step{
		demo.Type("abc"),
		demo.Annotate("Tab to the ciphertext output"),
		demo.KeyWithDesc("tab", "focus ciphertext"),
		demo.Capture(),
		demo.Annotate("Typing here is reverted"),
		demo.Type("zzz"),
		demo.Key("backspace"),
		demo.Capture(),
	},
}
