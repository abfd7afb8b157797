package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/PabloGalante/mindmesh/internal/app/assessment"
	"github.com/PabloGalante/mindmesh/internal/domain"
)

func checkinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checkin",
		Short: "Answer the mental health check-in and see your result",
		RunE: func(cmd *cobra.Command, args []string) error {
			logs, err := setupLogging(io.Discard)
			if err != nil {
				return err
			}
			defer logs.Close()

			return runCheckin(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// runCheckin asks each question on out and reads one answer per line from
// in. Input ending early scores what was answered.
func runCheckin(in io.Reader, out io.Writer) error {
	c := assessment.NewCheckin()
	scanner := bufio.NewScanner(in)

	fmt.Fprintf(out, "%s\n\n", assessment.Intro)

	for !c.Done() {
		q, _ := c.Current()
		answered, total := c.Progress()

		fmt.Fprintf(out, "[%d/%d] %s\n", answered+1, total, q.Prompt)
		switch q.Kind {
		case domain.KindScale:
			fmt.Fprintln(out, "  (1-10)")
		case domain.KindChoice:
			for i, o := range q.Options {
				fmt.Fprintf(out, "  %d. %s\n", i+1, o)
			}
		case domain.KindText:
			fmt.Fprintln(out, "  (optional, press enter to skip)")
		}
		fmt.Fprint(out, "> ")

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read answer: %w", err)
			}
			fmt.Fprintln(out, "\n\nCheck-in ended early, scoring your answers so far.")
			break
		}

		if err := c.AnswerInput(scanner.Text()); err != nil {
			if errors.Is(err, assessment.ErrInvalidAnswer) {
				fmt.Fprintln(out, "  Sorry, that is not one of the answers. Please try again.")
				continue
			}
			return err
		}
		fmt.Fprintln(out)
	}

	result := c.Result()
	fmt.Fprintf(out, "%s\n%s\n", result.Title, result.Guidance)
	return nil
}
