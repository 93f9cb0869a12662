package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cours-de-latin/declension"
	"github.com/cours-de-latin/declension/htmlbind"
	"github.com/cours-de-latin/declension/internal/logging"
	"github.com/cours-de-latin/declension/kz"
	"github.com/cours-de-latin/declension/ru"
)

// cli carries the settings shared by every sub-command. Values come from
// flags, DECLENSION_* environment variables or the --config file, in that
// order of precedence.
type cli struct {
	v   *viper.Viper
	log *logrus.Logger
	reg *declension.Registry
}

func newRootCmd() *cobra.Command {
	c := &cli{v: viper.New()}

	root := &cobra.Command{
		Use:   "declension",
		Short: "Inflect Russian and Kazakh words into grammatical cases",
		Long: `declension puts a word, a personal name or a short phrase into the
requested grammatical case. Russian (ru) uses the cases nominative, genitive,
dative, accusative, instrumental and prepositional; Kazakh (kz) uses ataw,
ilik, barys, tabys, jatys, shygys and komektes.`,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "Configuration file path")
	pf.String("log-level", "warn", "Logging level (debug, info, warn, error)")
	pf.String("lang", "ru", "Language code (ru, kz)")
	pf.String("case", "", "Case identifier")
	pf.String("exceptions", "", "YAML file with extra exception entries for --lang")

	c.v.BindPFlag("config", pf.Lookup("config"))
	c.v.BindPFlag("log_level", pf.Lookup("log-level"))
	c.v.BindPFlag("lang", pf.Lookup("lang"))
	c.v.BindPFlag("case", pf.Lookup("case"))
	c.v.BindPFlag("exceptions", pf.Lookup("exceptions"))

	root.AddCommand(c.inflectCmd(), c.textCmd(), c.htmlCmd(), c.casesCmd())
	return root
}

// setup loads configuration, the logger and the engine registry.
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	if path := c.v.GetString("config"); path != "" {
		c.v.SetConfigFile(path)
		if err := c.v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}
	c.v.SetEnvPrefix("DECLENSION")
	c.v.AutomaticEnv()

	log, err := logging.NewWithWriter(cmd.ErrOrStderr(), logging.Config{Level: c.v.GetString("log_level")})
	if err != nil {
		return err
	}
	c.log = log

	c.reg, err = c.buildRegistry()
	if err != nil {
		return err
	}
	c.log.WithField("languages", c.reg.Languages()).Debug("engines loaded")
	return nil
}

func (c *cli) buildRegistry() (*declension.Registry, error) {
	var ruOpts []ru.Option
	var kzOpts []kz.Option
	if path := c.v.GetString("exceptions"); path != "" {
		t, err := declension.LoadExceptionsFile(path)
		if err != nil {
			return nil, err
		}
		switch strings.ToLower(c.v.GetString("lang")) {
		case "ru":
			ruOpts = append(ruOpts, ru.WithExceptions(t))
		case "kz":
			kzOpts = append(kzOpts, kz.WithExceptions(t))
		default:
			return nil, fmt.Errorf("--exceptions needs --lang ru or kz")
		}
	}
	r, err := ru.New(ruOpts...)
	if err != nil {
		return nil, err
	}
	k, err := kz.New(kzOpts...)
	if err != nil {
		return nil, err
	}
	return declension.NewRegistry(r.Language(), k.Language())
}

func (c *cli) caseName() (string, error) {
	name := c.v.GetString("case")
	if name == "" {
		return "", fmt.Errorf("--case is required")
	}
	return name, nil
}

func (c *cli) inflectCmd() *cobra.Command {
	var policy string
	cmd := &cobra.Command{
		Use:   "inflect WORD...",
		Short: "Inflect a word, a personal name or a phrase",
		Long: `Inflect joins its arguments with spaces and inflects the result. A
multi-word input is treated according to --policy: "name" declines the
parts of a personal name, "phrase" only the head word, "auto" decides from
capitalization.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			caseName, err := c.caseName()
			if err != nil {
				return err
			}
			p, err := declension.ParsePolicy(policy)
			if err != nil {
				return err
			}
			word := strings.Join(args, " ")
			out, err := c.reg.InflectWord(word, c.v.GetString("lang"), caseName, declension.Options{Policy: p})
			if err != nil {
				return err
			}
			c.log.WithFields(logrus.Fields{"input": word, "result": out}).Debug("inflected")
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&policy, "policy", "auto", "Name policy (auto, name, phrase)")
	return cmd
}

func (c *cli) textCmd() *cobra.Command {
	var everyWord bool
	cmd := &cobra.Command{
		Use:   "text [WORD...]",
		Short: "Inflect the first word (or every word) of a sentence",
		Long:  `Text reads the sentence from its arguments, or from stdin when none are given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			caseName, err := c.caseName()
			if err != nil {
				return err
			}
			text := strings.Join(args, " ")
			if len(args) == 0 {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				text = string(b)
			}
			out, err := c.reg.InflectText(text, c.v.GetString("lang"), caseName, !everyWord)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().BoolVar(&everyWord, "every-word", false, "Inflect every word instead of the first one")
	return cmd
}

func (c *cli) htmlCmd() *cobra.Command {
	var selector, target, policy string
	var render bool
	cmd := &cobra.Command{
		Use:   "html FILE",
		Short: "Inflect the text of an HTML element",
		Long: `Html reads the text of the element matched by --selector (the value of an
input, the content of anything else), inflects it and, with --target,
writes it into another element. With --render the whole document is printed
instead of the result. FILE "-" reads stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			caseName, err := c.caseName()
			if err != nil {
				return err
			}
			p, err := declension.ParsePolicy(policy)
			if err != nil {
				return err
			}

			var in io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			doc, err := htmlbind.Parse(in)
			if err != nil {
				return err
			}
			out, err := doc.Bind(c.reg, htmlbind.Request{
				Selector: selector,
				Target:   target,
				Lang:     c.v.GetString("lang"),
				Case:     caseName,
				Policy:   p,
			})
			if err != nil {
				return err
			}
			if render {
				if out, err = doc.HTML(); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&selector, "selector", "", "CSS selector of the source element (required)")
	cmd.Flags().StringVar(&target, "target", "", "CSS selector of the element receiving the result")
	cmd.Flags().StringVar(&policy, "policy", "auto", "Name policy (auto, name, phrase)")
	cmd.Flags().BoolVar(&render, "render", false, "Print the updated document")
	cmd.MarkFlagRequired("selector")
	return cmd
}

func (c *cli) casesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cases",
		Short: "List the case identifiers of --lang",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := c.reg.Engine(c.v.GetString("lang"))
			if err != nil {
				return err
			}
			for _, name := range e.CaseNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
