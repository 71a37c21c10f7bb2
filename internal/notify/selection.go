package notify

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

var (
	Selections  = []string{"primary", "secondary", "clipboard"}
	execCommand = exec.CommandContext
)

func ValidateSelection(sel string) error {
	for _, s := range Selections {
		if s == sel {
			return nil
		}
	}
	return fmt.Errorf("invalid selection %q (expected one of %s)", sel, strings.Join(Selections, ", "))
}

// ReadSelection returns the contents of an X selection via xsel.
func ReadSelection(ctx context.Context, sel string) (string, error) {
	if err := ValidateSelection(sel); err != nil {
		return "", err
	}
	out, err := execCommand(ctx, "xsel", "-o", "--"+sel).Output()
	if err != nil {
		return "", fmt.Errorf("failed to read %s selection: %w", sel, err)
	}
	return string(out), nil
}
