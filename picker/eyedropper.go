package picker

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/lifer0se/waycolor"
)

// screenPickerCommand is the executable consulted for a screen pixel.
// Swapped out in tests.
var screenPickerCommand = "hyprpicker"

// PickScreenColor runs the external screen picker utility and parses
// the hex color it prints on stdout. The call blocks until the utility
// exits or ctx is cancelled; a missing utility, a failing run, or
// output that is not a #RRGGBB string comes back as an error and the
// caller keeps its current color.
func PickScreenColor(ctx context.Context) (waycolor.Color, error) {
	waycolor.Logger().Debug("running screen picker", "command", screenPickerCommand)
	out, err := exec.CommandContext(ctx, screenPickerCommand).Output()
	if err != nil {
		return waycolor.Color{}, fmt.Errorf("run %s: %w", screenPickerCommand, err)
	}
	hex := strings.TrimSpace(string(out))
	c, ok := waycolor.FromHex(hex)
	if !ok {
		return waycolor.Color{}, fmt.Errorf("parse %s output %q: not a hex color", screenPickerCommand, hex)
	}
	return c, nil
}
