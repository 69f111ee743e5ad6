package main

import (
	"fmt"
	"net"

	"github.com/juju/loggo"
	"github.com/spf13/cobra"

	"github.com/lumen-lang/lumen/repl"
)

var serveLogger = loggo.GetLogger("lumen.serve")

// newServeCommand builds `lumen serve <port>`, kept from the teacher's
// server mode: each TCP connection gets its own REPL session, using the
// connection itself as both the session's input and output stream,
// exactly as the teacher's handleClient does.
func newServeCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve <port>",
		Short: "Serve REPL sessions over TCP, one connection per session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig(*configPath)
			return serve(args[0], cfg.Banner, cfg.Prompt)
		},
	}
}

func serve(port, banner, prompt string) error {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return fmt.Errorf("failed to start server on port %s: %w", port, err)
	}
	defer listener.Close()

	serveLogger.Infof("listening on :%s", port)

	for {
		conn, err := listener.Accept()
		if err != nil {
			serveLogger.Errorf("accept failed: %v", err)
			continue
		}
		go handleClient(conn, banner, prompt)
	}
}

func handleClient(conn net.Conn, banner, prompt string) {
	defer conn.Close()
	serveLogger.Infof("client connected: %s", conn.RemoteAddr())

	session := repl.New(banner, prompt, false)
	if err := session.Start(conn); err != nil {
		serveLogger.Errorf("session error for %s: %v", conn.RemoteAddr(), err)
	}

	serveLogger.Infof("client disconnected: %s", conn.RemoteAddr())
}
