package scenarios

import (
	"time"

	"github.com/zhubert/caesar/internal/demo"
)

// Overview walks through encrypting, changing the shift, and decrypting.
var Overview = &demo.Scenario{
	Name:        "overview",
	Description: "Encrypt, change the shift, then decrypt",
	Width:       100,
	Height:      30,
	Setup:       demo.DefaultSetup(),
	Steps: []demo.Step{
		demo.Annotate("Type into the plaintext field"),
		demo.TypeWithDesc("Hello, World!", "type plaintext"),
		demo.Capture(),

		demo.Annotate("ctrl+up raises the shift and re-encrypts"),
		demo.KeyWithDesc("ctrl+up", "shift 7"),
		demo.KeyWithDesc("ctrl+up", "shift 8"),
		demo.Capture(),

		demo.Annotate("ctrl+t switches to decryption; ciphertext moves on top"),
		demo.KeyWithDesc("ctrl+t", "toggle direction"),
		demo.Capture(),

		demo.Annotate("Clear and paste ciphertext to decrypt it"),
		demo.Key("ctrl+l"),
		demo.Paste("Pmttw, Ewztl!"),
		demo.Capture(),

		demo.Annotate("ctrl+y copies the output"),
		demo.Key("ctrl+y"),
		demo.Capture(),
		demo.Wait(time.Second),
	},
}
