package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/they4kman/minesweep/cli"
	"github.com/they4kman/minesweep/director/constraint"
	"github.com/they4kman/minesweep/director/random"
	"github.com/they4kman/minesweep/game"
)

var (
	gameConfig   = game.NewConfig()
	configPath   string
	directorName string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "minesweep",
	Short: "Play manual or computer-driven Minesweeper in the terminal",
	Long: `minesweep is a terminal Minesweeper game which supports human- or
computer-driven playing.

Run with no arguments to play manually
	minesweep

Use the director flag to make the computer play for you
	minesweep --director constraint
`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}

		if configPath != "" {
			file, err := loadFileConfig(configPath)
			if err != nil {
				return err
			}
			file.apply(&gameConfig, cmd.Flags().Changed)
		}

		board, err := game.New(gameConfig)
		if err != nil {
			return err
		}

		g := cli.NewGame(board)
		switch directorName {
		case "":
		case "random":
			g.Director = &random.Director{}
		case "constraint":
			g.Director = &constraint.Director{}
		default:
			return fmt.Errorf("unknown director %q (expected random or constraint)", directorName)
		}
		if g.Director != nil {
			g.DirectorDelay = 200 * time.Millisecond
		}

		return g.Run()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// fileConfig is the yaml shape of the optional config file. Pointer fields
// distinguish an absent key from a zero value.
type fileConfig struct {
	Width  *int `yaml:"width"`
	Height *int `yaml:"height"`
	Mines  *int `yaml:"mines"`
}

func loadFileConfig(path string) (fileConfig, error) {
	var file fileConfig

	raw, err := os.ReadFile(path)
	if err != nil {
		return file, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.UnmarshalStrict(raw, &file); err != nil {
		return file, fmt.Errorf("parse config %s: %w", path, err)
	}

	return file, nil
}

// apply merges file values into config for every flag the user did not set
// explicitly, so flags take precedence over the config file.
func (file fileConfig) apply(config *game.Config, flagChanged func(string) bool) {
	if file.Width != nil && !flagChanged("width") {
		config.Cols = *file.Width
	}
	if file.Height != nil && !flagChanged("height") {
		config.Rows = *file.Height
	}
	if file.Mines != nil && !flagChanged("mines") {
		config.NumMines = *file.Mines
	}
}

func init() {
	// Define our root --help without a shorthand, as we'll use -h for --height
	// Ref: https://github.com/spf13/cobra/issues/291
	rootCmd.Flags().Bool("help", false, "Help for this command")

	rootCmd.Flags().IntVarP(&gameConfig.Cols, "width", "w", gameConfig.Cols, "Width of game board, in cells")
	rootCmd.Flags().IntVarP(&gameConfig.Rows, "height", "h", gameConfig.Rows, "Height of game board, in cells")
	rootCmd.Flags().IntVarP(&gameConfig.NumMines, "mines", "m", gameConfig.NumMines, "Number of mines to place in the game board")
	rootCmd.Flags().Int64Var(&gameConfig.Seed, "seed", 0, "Mine placement seed (0 seeds from the clock)")
	rootCmd.Flags().StringVarP(&directorName, "director", "d", "", "Make the computer play (random or constraint)")
	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to a yaml file with default width/height/mines")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
