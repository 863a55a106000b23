package persistmake

import (
	"fmt"
	"io"

	"github.com/arthur-debert/persist-make/pkg/core"
	"github.com/arthur-debert/persist-make/pkg/errors"
)

// printResult writes one line per materialized entry followed by a summary
func printResult(w io.Writer, result *core.Result) {
	for _, p := range result.Paths {
		fmt.Fprintln(w, styled(w, "Header", p.Path))
		for _, step := range p.Steps {
			label, style := MsgStepKept, "Confirmed"
			if step.Created {
				label, style = MsgStepCreated, "Created"
			}
			fmt.Fprintf(w, "  %s %s  %s\n",
				styled(w, style, fmt.Sprintf("%-7s", label)),
				styled(w, "FilePath", step.Pair.Target),
				styled(w, "Muted", step.Metadata.String()))
		}
	}
	fmt.Fprintf(w, MsgSummaryFormat, result.Steps(), len(result.Paths), result.Created())
}

// hintFor returns a follow-up suggestion for well known failures
func hintFor(err error) string {
	switch errors.GetErrorCode(err) {
	case errors.ErrOwnership:
		return MsgHintOwnership
	case errors.ErrTypeMismatch:
		return MsgHintMismatch
	case errors.ErrSourceNotFound:
		return MsgHintNotFound
	case errors.ErrUnsupportedKind:
		return MsgHintUnsupported
	}
	return ""
}

// PrintError renders err, and a hint when one applies, to w
func PrintError(w io.Writer, err error) {
	fmt.Fprintln(w, styled(w, "Error", fmt.Sprintf("Error: %v", err)))
	if hint := hintFor(err); hint != "" {
		fmt.Fprintln(w, styled(w, "Hint", hint))
	}
}
