// Command cobs stuffs and unstuffs zero-delimited byte streams on
// stdin/stdout, as a pipeline filter:
//
//	cobs encode <raw.bin >frames.bin
//	cobs decode <frames.bin >raw.bin
//
// encode turns all of stdin into a single frame followed by the delimiter;
// decode accepts any number of delimited frames and concatenates their
// payloads.  The --reduced flag switches both directions to COBS/R.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/cmcqueen/cobs2-go/cobs"
	"github.com/urfave/cli/v3"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("cobs: ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newCommand(os.Stdin, os.Stdout)
	if err := cmd.Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}

func newCommand(stdin io.Reader, stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:   "cobs",
		Usage:  "stuff and unstuff zero-delimited byte streams",
		Reader: stdin,
		Writer: stdout,
		Commands: []*cli.Command{
			{
				Name:   "encode",
				Usage:  "encode stdin as a single delimited frame on stdout",
				Flags:  defaultFlags(),
				Action: encodeAction,
			},
			{
				Name:   "decode",
				Usage:  "decode the delimited frames on stdin to stdout",
				Flags:  defaultFlags(),
				Action: decodeAction,
			},
		},
	}
}

func defaultFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "reduced",
			Aliases: []string{"r"},
			Usage:   "use the COBS/R variant",
		},
	}
}

func encoding(cmd *cli.Command) *cobs.Encoding {
	if cmd.Bool("reduced") {
		return cobs.Reduced
	}
	return cobs.Standard
}

func encodeAction(ctx context.Context, cmd *cli.Command) error {
	root := cmd.Root()
	enc := cobs.NewEncoder(encoding(cmd), root.Writer)
	if _, err := io.Copy(enc, root.Reader); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	if _, err := root.Writer.Write([]byte{cobs.Delimiter}); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func decodeAction(ctx context.Context, cmd *cli.Command) error {
	root := cmd.Root()
	wire, err := io.ReadAll(root.Reader)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	s := cobs.NewScanner(encoding(cmd), wire)
	for s.Next() {
		payload, err := s.Decode()
		if err != nil {
			return fmt.Errorf("decode: %w", err)
		}
		if _, err := root.Writer.Write(payload); err != nil {
			return fmt.Errorf("decode: %w", err)
		}
	}
	return nil
}
