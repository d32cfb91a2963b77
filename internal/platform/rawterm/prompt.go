package rawterm

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

// Prompt is printed before reading the difficulty.
const Prompt = "Enter Difficulty (1-10): "

// PromptDifficulty asks for a difficulty on w and reads answers from r until
// one parses. It must run before the terminal enters raw mode.
func PromptDifficulty(r io.Reader, w io.Writer, cfg *config.DifficultyConfig) error {
	sc := bufio.NewScanner(r)
	for {
		fmt.Fprint(w, Prompt)
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return fmt.Errorf("rawterm: read difficulty: %w", err)
			}
			return fmt.Errorf("rawterm: read difficulty: %w", io.ErrUnexpectedEOF)
		}

		answer := strings.TrimSpace(sc.Text())
		if answer == "" {
			continue
		}
		if err := config.ParseDifficulty(answer, cfg); err != nil {
			fmt.Fprintln(w, err)
			continue
		}
		return nil
	}
}
