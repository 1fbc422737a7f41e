// Copyright (c) 2026 Rustam Gilyazov and Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command slackmcp starts a Model Context Protocol server that mediates
// access to a live Slack workspace.
package main

// In this file: command line parsing, environment handling and startup.

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rusq/osenv/v2"

	"github.com/rusq/slackmcp"
	"github.com/rusq/slackmcp/internal/mcp"
)

const (
	envToken     = "SLACK_BOT_TOKEN"
	envAllowlist = "SLACK_ALLOWED_CHANNELS"
)

var build = "dev"

// secrets defines the names of the supported secret files that the
// environment is loaded from, in addition to the process environment.
var secrets = []string{".env", ".env.txt", "secrets.txt"}

// params is the command line parameters.
type params struct {
	token     string
	allowlist string

	transport string
	listen    string

	logFile   string
	logJSON   bool
	verbose   bool
	traceFile string

	printVersion bool
}

func main() {
	loadSecrets(secrets)

	p, err := parseCmdLine(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if p.printVersion {
		fmt.Println(build)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, p); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

// run initialises the workspace session and serves MCP over the selected
// transport until ctx is cancelled.
func run(ctx context.Context, p params) error {
	lg, stopLog, err := initLog(p.logFile, p.logJSON, p.verbose)
	if err != nil {
		return err
	}
	defer stopLog()

	stopTrace := initTrace(p.traceFile)
	defer stopTrace()

	allow := slackmcp.ParseAllowlist(p.allowlist)

	sess, err := slackmcp.New(ctx, p.token,
		slackmcp.WithLogger(lg),
		slackmcp.WithAllowlist(allow),
	)
	if err != nil {
		return err
	}
	wi := sess.WorkspaceInfo()
	lg.InfoContext(ctx, "authenticated", "team", wi.Team, "user", wi.User, "url", wi.URL)

	srv := mcp.New(sess, lg)

	switch mcp.Transport(strings.ToLower(p.transport)) {
	case mcp.TransportStdio, "":
		return srv.ServeStdio(ctx)
	case mcp.TransportHTTP:
		return srv.ServeHTTP(ctx, p.listen)
	default:
		return fmt.Errorf("unknown transport %q (use \"stdio\" or \"http\")", p.transport)
	}
}

// loadSecrets loads the environment from the files in the secrets slice.
func loadSecrets(files []string) {
	for _, f := range files {
		godotenv.Load(f)
	}
}

// parseCmdLine parses the command line arguments.
func parseCmdLine(args []string) (params, error) {
	fs := flag.NewFlagSet("slackmcp", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(
			fs.Output(),
			"Slackmcp %s\n"+
				"Slackmcp is an MCP server that gives AI agents mediated access to a\n"+
				"live Slack workspace: listing channels and users, reading messages\n"+
				"and threads, searching, and posting to an allowed set of channels.\n\n"+
				"Usage:  %s [flags]\n\n",
			build, filepath.Base(os.Args[0]))
		fs.PrintDefaults()
	}

	var p params
	fs.StringVar(&p.token, "token", osenv.Secret(envToken, ""), "Slack `token` (environment: "+envToken+")")
	fs.StringVar(&p.allowlist, "allowed-channels", osenv.Value(envAllowlist, ""), "comma-separated `list` of channels that send_message may post to,\nempty allows all (environment: "+envAllowlist+")")

	fs.StringVar(&p.transport, "transport", "stdio", "MCP transport: \"stdio\" or \"http\"")
	fs.StringVar(&p.listen, "listen", "127.0.0.1:8484", "`address` to listen on when -transport=http")

	fs.StringVar(&p.logFile, "log", osenv.Value("LOG_FILE", ""), "log `file`, if not specified, messages are printed to STDERR")
	fs.BoolVar(&p.logJSON, "log-json", osenv.Value("JSON_LOG", false), "log in JSON format")
	fs.BoolVar(&p.verbose, "v", osenv.Value("DEBUG", false), "verbose messages")
	fs.StringVar(&p.traceFile, "trace", osenv.Value("TRACE_FILE", ""), "trace `file` (optional)")

	fs.BoolVar(&p.printVersion, "version", false, "print version and exit")

	// the token is captured above, scrub it from the environment so that it
	// does not leak into child processes.
	os.Unsetenv(envToken)

	if err := fs.Parse(args); err != nil {
		return p, err
	}
	return p, nil
}
