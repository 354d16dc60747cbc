// Command jksn bridges JSON and JKSN over stdin/stdout: by default it reads
// a JSON document and writes its JKSN encoding, and with -d it reads JKSN
// bytes and writes indented JSON.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/jksn-go/jksn/checksum"
	"github.com/jksn-go/jksn/decode"
	"github.com/jksn-go/jksn/encode"
	"github.com/jksn-go/jksn/internal/jsonbridge"
)

func main() {
	app := cli.NewApp()
	app.Name = "jksn"
	app.Usage = "convert between JSON and JKSN"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "d, decode",
			Usage: "decode JKSN from stdin to indented JSON on stdout",
		},
		cli.BoolFlag{
			Name:  "no-header",
			Usage: "omit (encode) or do not probe for (decode) the \"jk!\" magic prefix",
		},
		cli.StringFlag{
			Name:  "seal",
			Usage: "encode mode only: wrap the output with a whole-value checksum (djb8, crc32, md5, sha1, sha256, sha512)",
		},
		cli.BoolFlag{
			Name:  "seal-suffix",
			Usage: "place the --seal checksum after the value instead of before it",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "jksn:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}

	if c.Bool("decode") {
		return runDecode(input, c.Bool("no-header"))
	}

	return runEncode(input, c.Bool("no-header"), c.String("seal"), c.Bool("seal-suffix"))
}

func runDecode(input []byte, noHeader bool) error {
	dec := decode.New()
	v, err := dec.Decode(input, decode.WithHeader(!noHeader))
	if err != nil {
		return err
	}

	out, err := jsonbridge.ToJSONIndent(v, "  ")
	if err != nil {
		return fmt.Errorf("rendering JSON: %w", err)
	}
	out = append(out, '\n')
	_, err = os.Stdout.Write(out)

	return err
}

func runEncode(input []byte, noHeader bool, seal string, sealSuffix bool) error {
	v, err := jsonbridge.FromJSON(input)
	if err != nil {
		return fmt.Errorf("parsing JSON: %w", err)
	}

	enc := encode.New()

	var out []byte
	if seal == "" {
		out, err = enc.Encode(v, encode.WithHeader(!noHeader))
	} else {
		var algo checksum.Algorithm
		algo, err = parseAlgorithm(seal)
		if err != nil {
			return err
		}
		out, err = enc.Seal(v, algo, !sealSuffix, !noHeader, true)
	}
	if err != nil {
		return err
	}

	_, err = os.Stdout.Write(out)

	return err
}

func parseAlgorithm(name string) (checksum.Algorithm, error) {
	switch name {
	case "djb8":
		return checksum.DJB8, nil
	case "crc32":
		return checksum.CRC32, nil
	case "md5":
		return checksum.MD5, nil
	case "sha1":
		return checksum.SHA1, nil
	case "sha256":
		return checksum.SHA256, nil
	case "sha512":
		return checksum.SHA512, nil
	default:
		return 0, fmt.Errorf("unknown --seal algorithm %q", name)
	}
}
