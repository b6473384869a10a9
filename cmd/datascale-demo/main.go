// Command datascale-demo renders sample figures whose line widths, marker
// sizes and output resolution are set in data units with datascale.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/gogpu/datascale"
)

var configFile string

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Configuration file (YAML or TOML)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Print debug output")
	initDemoFlags(rootCmd.Flags())

	viper.BindPFlags(rootCmd.PersistentFlags())
	viper.BindPFlags(rootCmd.Flags())
	viper.SetEnvPrefix("datascale")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func initDemoFlags(fs *pflag.FlagSet) {
	fs.String("out-dir", ".", "Directory the test images are written to")
	fs.Float64("dpi-mult", 5, "Pixels per data unit of the resolution figure")
	fs.String("policy", datascale.Warn.String(), "Resolution range policy: warn or auto")
	fs.Float64("low", datascale.LimitsStandard.Low, "Lowest recommended output dpi")
	fs.Float64("high", datascale.LimitsStandard.High, "Highest recommended output dpi")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "datascale-demo",
	Short: "Render figures scaled to data units",
	Long: `datascale-demo writes two test images to the output directory:
datascale_plotdatasize_test.png shows line widths and marker sizes of one
and two data units, datascale_plotdatadpi_test.png is saved at a resolution
where each data unit spans --dpi-mult pixels.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configFile != "" {
			viper.SetConfigFile(configFile)
			if err := viper.ReadInConfig(); err != nil {
				return fmt.Errorf("read config %s: %w", configFile, err)
			}
		}
		level := slog.LevelInfo
		if viper.GetBool("verbose") {
			level = slog.LevelDebug
		}
		datascale.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := loadConfig()
		if err != nil {
			return err
		}
		return run(conf)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the datascale version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("datascale " + datascale.Version)
	},
}

// demoConfig is the resolved demo configuration.
type demoConfig struct {
	OutDir  string
	DPIMult float64
	Policy  datascale.RangePolicy
	Limits  datascale.Limits
}

func loadConfig() (demoConfig, error) {
	policy, err := datascale.ParseRangePolicy(viper.GetString("policy"))
	if err != nil {
		return demoConfig{}, err
	}
	lim := datascale.Limits{Low: viper.GetFloat64("low"), High: viper.GetFloat64("high")}
	if err := lim.Validate(); err != nil {
		return demoConfig{}, err
	}
	return demoConfig{
		OutDir:  viper.GetString("out-dir"),
		DPIMult: viper.GetFloat64("dpi-mult"),
		Policy:  policy,
		Limits:  lim,
	}, nil
}
