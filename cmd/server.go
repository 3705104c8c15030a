package cmd

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	log2 "log"
	"net/http"
	"os"
	"strings"

	"github.com/gocql/gocql"
	"github.com/julienschmidt/httprouter"
	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/datastax/action-table/config"
	"github.com/datastax/action-table/endpoint"
	"github.com/datastax/action-table/log"
	"github.com/datastax/action-table/source"
	"github.com/datastax/action-table/table"
)

// Environment variables prefixed with "ACTION_TABLE_" can override settings e.g. "ACTION_TABLE_HOSTS"
const envVarPrefix = "action_table"

var cfgFile string
var logger log.Logger

var serverCmd = &cobra.Command{
	Use:   os.Args[0] + " --tables [FILE] [--hosts [HOSTS]] [OPTIONS]",
	Short: "Serve action tables as HTML, text and JSON",
	Args: func(cmd *cobra.Command, args []string) error {
		if viper.GetString("tables") == "" {
			return errors.New("a table definition file is required")
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		endpoint := createEndpoint()
		defer endpoint.Close()

		router := createRouter()
		for _, route := range endpoint.Routes(viper.GetString("path")) {
			router.Handler(route.Method, route.Pattern, route.Handler)
		}

		logger.Info("serving tables",
			"tables", endpoint.Tables(),
			"path", viper.GetString("path"))
		listenAndServe(router, viper.GetInt("port"))
	},
}

var renderCmd = &cobra.Command{
	Use:   "render --tables [FILE] --table [NAME] [--format html|text]",
	Short: "Render a single table to stdout",
	Args: func(cmd *cobra.Command, args []string) error {
		if viper.GetString("tables") == "" {
			return errors.New("a table definition file is required")
		}
		if viper.GetString("table") == "" {
			return errors.New("a table name is required")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		tables := createEndpoint()
		defer tables.Close()

		view, err := tables.View(context.Background(), viper.GetString("table"))
		if err != nil {
			return err
		}

		buffer := &bytes.Buffer{}
		switch format := viper.GetString("format"); format {
		case endpoint.FormatHTML:
			if err := table.WriteHTML(buffer, view); err != nil {
				return err
			}
		case endpoint.FormatText:
			table.WriteText(buffer, view)
		default:
			return fmt.Errorf("unsupported format: %s", format)
		}

		return writeOutput(cmd.OutOrStdout(), viper.GetString("output"), buffer)
	},
}

// Execute starts the table server, or runs the render subcommand
func Execute() {
	zapLogger, err := zap.NewProduction()
	if err != nil {
		log2.Fatalf("unable to initialize logger: %v", err)
	}

	logger = log.NewZapLogger(zapLogger)

	flags := serverCmd.PersistentFlags()

	// General flags
	flags.StringVarP(&cfgFile, "config", "c", "", "config file")
	flags.String("tables", "", "YAML or JSON file defining the served tables")
	flags.String("naming", config.NamingDefault, "column label naming convention. options: default,words")
	flags.String("actions-header", config.DefaultActionsHeader, "default label of the actions column")

	// Database flags, only needed by tables defined with a query
	flags.StringSliceP("hosts", "t", nil, "hosts for connecting to the database")
	flags.StringP("username", "u", "", "connect with database username")
	flags.StringP("password", "p", "", "database user's password")
	flags.String("local-dc", "", "local datacenter, inferred from the first host when empty")
	flags.String("consistency", gocql.LocalQuorum.String(), "consistency level of table queries")
	flags.Int("page-size", 0, "page size of table queries, driver default when 0")

	// Server flags
	serverFlags := serverCmd.Flags()
	serverFlags.String("path", endpoint.DefaultTablesPath, "tables endpoint path")
	serverFlags.Int("port", 8080, "tables endpoint port")
	serverFlags.Bool("request-logging", false, "enable request logging")
	serverFlags.String("access-control-allow-origin", "", "Access-Control-Allow-Origin header value")

	// Render flags
	renderFlags := renderCmd.Flags()
	renderFlags.String("table", "", "name of the table to render")
	renderFlags.String("format", endpoint.FormatHTML, "output format. options: html,text")
	renderFlags.StringP("output", "o", "", "file to write the table to instead of stdout")

	for _, flagSet := range []*pflag.FlagSet{flags, serverFlags, renderFlags} {
		bindFlags(flagSet)
	}

	serverCmd.AddCommand(renderCmd)

	cobra.OnInitialize(initialize)

	viper.SetEnvPrefix(envVarPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := serverCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// writeOutput replaces the output file atomically, or writes to stdout when no file is given
func writeOutput(stdout io.Writer, filename string, rendered *bytes.Buffer) error {
	if filename == "" {
		_, err := rendered.WriteTo(stdout)
		return err
	}
	if err := atomic.WriteFile(filename, rendered); err != nil {
		return fmt.Errorf("unable to write %s: %w", filename, err)
	}
	return nil
}

func bindFlags(flags *pflag.FlagSet) {
	flags.VisitAll(func(flag *pflag.Flag) {
		if flag.Name != "config" {
			viper.BindPFlag(flag.Name, flags.Lookup(flag.Name))
		}
	})
}

func createEndpoint() *endpoint.TableEndpoint {
	definitions, err := source.LoadDefinitions(viper.GetString("tables"))
	if err != nil {
		logger.Fatal("unable to load table definitions",
			"file", viper.GetString("tables"),
			"error", err)
	}

	naming, err := config.Naming(viper.GetString("naming"))
	if err != nil {
		logger.Fatal("invalid naming convention", "naming", viper.GetString("naming"), "error", err)
	}

	consistency, err := gocql.ParseConsistencyWrapper(viper.GetString("consistency"))
	if err != nil {
		logger.Fatal("invalid consistency", "consistency", viper.GetString("consistency"), "error", err)
	}

	cfg := endpoint.NewEndpointConfigWithLogger(logger, definitions...)
	cfg.
		WithDbHosts(getStringSlice("hosts")...).
		WithDbUsername(viper.GetString("username")).
		WithDbPassword(viper.GetString("password")).
		WithLocalDc(viper.GetString("local-dc")).
		WithConsistency(consistency).
		WithPageSize(viper.GetInt("page-size")).
		WithNaming(naming).
		WithActionsHeader(viper.GetString("actions-header"))

	endpoint, err := cfg.NewEndpoint()
	if err != nil {
		logger.Fatal("unable create new endpoint",
			"error", err)
	}

	return endpoint
}

func maybeAddRequestLogging(handler http.Handler) http.Handler {
	if viper.GetBool("request-logging") {
		handler = log.NewLoggingHandler(handler, logger)
	}
	return handler
}

func maybeAddCORS(handler http.Handler) http.Handler {
	if value := viper.GetString("access-control-allow-origin"); value != "" {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", value)
			handler.ServeHTTP(w, r)
		})
	}
	return handler
}

func initialize() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err == nil {
			logger.Info("using config file",
				"file", viper.ConfigFileUsed())
		}
	}
}

func createRouter() *httprouter.Router {
	router := httprouter.New()
	if value := viper.GetString("access-control-allow-origin"); value != "" {
		router.GlobalOPTIONS = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Access-Control-Request-Method") != "" {
				header := w.Header()
				header.Set("Access-Control-Allow-Method", r.Header.Get("Access-Control-Request-Method"))
				header.Set("Access-Control-Allow-Headers", r.Header.Get("Access-Control-Request-Headers"))
				header.Set("Access-Control-Allow-Origin", value)
			}

			w.WriteHeader(http.StatusNoContent)
		})
	}
	return router
}

func listenAndServe(handler http.Handler, port int) {
	logger.Info("server listening",
		"port", port)
	handler = maybeAddCORS(maybeAddRequestLogging(handler))
	err := http.ListenAndServe(fmt.Sprintf(":%d", port), handler)
	if err != nil {
		logger.Fatal("unable to start server",
			"port", port,
			"error", err)
	}
}

func getStringSlice(key string) []string {
	value := viper.GetStringSlice(key)
	slice, err := toStringSlice(value)
	if err != nil {
		logger.Fatal("invalid string slice value for setting",
			"error", err,
			"key", key,
			"value", value)
	}
	return slice
}

func toStringSlice(slice []string) ([]string, error) {
	result := make([]string, 0)
	for _, entry := range slice {
		stringReader := strings.NewReader(entry)
		csvReader := csv.NewReader(stringReader)
		split, err := csvReader.Read()
		if err != nil {
			return nil, err
		}
		for _, part := range split {
			if part != "" { // Don't add empty values
				result = append(result, part)
			}
		}
	}
	return result, nil
}
