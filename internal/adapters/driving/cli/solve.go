package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/damien/blue-prince/internal/adapters/driven/wordlist"
	"github.com/damien/blue-prince/internal/core/domain"
	"github.com/damien/blue-prince/internal/core/services"
	"github.com/damien/blue-prince/internal/logger"
)

// Config keys for solve defaults.
const (
	keyWordList = "solve.word_list"
	keyNoFilter = "solve.no_filter"
)

var (
	solveWordListPath string
	solveAll          bool
	solveCount        bool
)

var solveCmd = &cobra.Command{
	Use:   "solve [character sets...]",
	Short: "Enumerate words from per-position character sets",
	Long: `Enumerates every word formed by choosing one character from each
argument, where each argument lists the candidate characters for one
letter position. Results are filtered against the bundled word list
unless a custom list or --all-combinations is given.

Example:
  blueprince solve cbr aio tse`,
	Args: func(_ *cobra.Command, args []string) error {
		if len(args) == 0 {
			return domain.ErrNoCharacterSets
		}
		return nil
	},
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringVarP(&solveWordListPath, "word-list", "w", "", "path to a custom word list file")
	solveCmd.Flags().BoolVarP(&solveAll, "all-combinations", "a", false, "show all combinations, even those not in the word list")
	solveCmd.Flags().BoolVar(&solveCount, "count", false, "print only the number of results")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	logger.Section("Solve")

	slots := make([]domain.Slot, 0, len(args))
	for _, arg := range args {
		slots = append(slots, domain.SlotFromString(arg))
		logger.Debug("Slot %d: %q (%d candidates)", len(slots)-1, arg, len([]rune(arg)))
	}

	list, err := resolveWordListChoice(cmd)
	if err != nil {
		return err
	}

	solver, err := services.NewSolverService(slots, list, wordlist.NewEmbeddedSource())
	if err != nil {
		return err
	}

	logger.Debug("Word list: %s (%d words)", solver.WordList().Source(), solver.WordList().Len())
	logger.Debug("Combination space: %d", solver.Cardinality())

	seq := solver.Words()
	if solver.WordList().Source() == domain.WordListDisabled {
		// Direct unfiltered path; identical output, skips the
		// per-candidate filter check.
		seq = solver.Combinations()
	}

	if solveCount {
		n := 0
		for range seq {
			n++
		}
		cmd.Println(n)
		return nil
	}

	for word := range seq {
		cmd.Println(word)
	}
	return nil
}

// resolveWordListChoice picks the word list for this run.
// Precedence: flags, then persisted config, then the bundled default.
func resolveWordListChoice(cmd *cobra.Command) (domain.WordList, error) {
	path := solveWordListPath
	noFilter := solveAll

	if store := openConfigStore(); store != nil {
		if path == "" {
			path = store.GetString(keyWordList)
		}
		if !cmd.Flags().Changed("all-combinations") && store.GetBool(keyNoFilter) {
			noFilter = true
		}
	}

	switch {
	case noFilter:
		return domain.DisabledWordList(), nil
	case path != "":
		words, err := wordlist.NewFileSource(path).Words()
		if err != nil {
			return domain.WordList{}, fmt.Errorf("load word list: %w", err)
		}
		logger.Debug("Loaded %d words from %s", len(words), path)
		return domain.CustomWordList(words), nil
	default:
		return domain.DefaultWordList(), nil
	}
}
