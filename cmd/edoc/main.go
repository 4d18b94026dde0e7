package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/edoclabs/edoc/archive"
	"github.com/edoclabs/edoc/crypto/cipher"
)

// VERSION is injected by buildflags
var VERSION = "SELFBUILD"

// ArchiveSuffix is appended to encoded outputs by default.
const ArchiveSuffix = ".edoc"

func main() {
	myApp := cli.NewApp()
	myApp.Name = "edoc"
	myApp.Usage = "password-based file/folder encoder"
	myApp.Version = VERSION
	myApp.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "encode, e",
			Usage: "encode the given file or folder into an archive",
		},
		cli.BoolFlag{
			Name:  "decode, d",
			Usage: "decode the given archive (mode auto-detected from its first byte)",
		},
		cli.StringFlag{
			Name:  "file, f",
			Usage: "path to the file, folder, or archive to process",
		},
		cli.StringFlag{
			Name:  "out, o",
			Usage: "output path (default: input plus/minus the .edoc suffix)",
		},
		cli.StringFlag{
			Name:   "password, p",
			Usage:  "password protecting the archive",
			EnvVar: "EDOC_PASSWORD",
		},
		cli.BoolFlag{
			Name:  "delete-input",
			Usage: "remove the input after a successful operation",
		},
		cli.BoolFlag{
			Name:  "deterministic",
			Usage: "derive seeds and padding from the password for reproducible archives",
		},
		cli.BoolFlag{
			Name:  "quiet, q",
			Usage: "suppress the progress line",
		},
	}
	myApp.Action = func(c *cli.Context) error {
		in := c.String("file")
		if in == "" {
			return errors.New("no input file given, see --file")
		}
		pass := c.String("password")
		if pass == "" {
			return errors.New("password must not be empty, see --password")
		}
		if c.Bool("encode") == c.Bool("decode") {
			return errors.New("exactly one of --encode and --decode must be set")
		}

		cfg := cipher.NewEdocCipher()
		cfg.SetKey([]byte(pass))
		if c.Bool("deterministic") {
			cfg.SetRand(cipher.NewDeterministicRand([]byte(pass)))
		}

		var err error
		if c.Bool("encode") {
			err = encode(c, cfg, in)
		} else {
			err = decode(c, cfg, in)
		}
		if err != nil {
			return err
		}

		if c.Bool("delete-input") {
			if err = os.RemoveAll(in); err != nil {
				return errors.WithStack(err)
			}
		}
		if !c.Bool("quiet") {
			fmt.Println()
		}
		return nil
	}
	checkError(myApp.Run(os.Args))
}

func encode(c *cli.Context, cfg *cipher.EdocCipher, in string) error {
	info, err := os.Stat(in)
	if err != nil {
		return errors.WithStack(err)
	}

	out := c.String("out")
	if out == "" {
		out = in + ArchiveSuffix
	}
	dst, err := os.Create(out)
	if err != nil {
		return errors.WithStack(err)
	}
	defer dst.Close()

	w := archive.NewWriter(cfg)

	if info.IsDir() {
		tree, err := archive.NewDirReader(in)
		if err != nil {
			return errors.WithStack(err)
		}
		w.SetProgress(progressLine(c, tree.Size()))
		if err = w.EncodeTree(tree, dst); err != nil {
			return err
		}
	} else {
		src, err := os.Open(in)
		if err != nil {
			return errors.WithStack(err)
		}
		defer src.Close()
		w.SetProgress(progressLine(c, info.Size()))
		if err = w.EncodeFile(src, dst); err != nil {
			return err
		}
	}
	return errors.WithStack(dst.Sync())
}

func decode(c *cli.Context, cfg *cipher.EdocCipher, in string) error {
	src, err := os.Open(in)
	if err != nil {
		return errors.WithStack(err)
	}
	defer src.Close()

	out := c.String("out")
	if out == "" {
		out = strings.TrimSuffix(in, ArchiveSuffix)
		if out == in {
			out = in + ".out"
		}
	}

	r := archive.NewReader(cfg)
	r.SetProgress(progressLine(c, 0))

	br := bufio.NewReader(src)
	mode, err := br.Peek(1)
	if err != nil || mode[0] != archive.ModeTree {
		// Single-file archive (or truncated input: let the reader say so).
		dst, err := os.Create(out)
		if err != nil {
			return errors.WithStack(err)
		}
		defer dst.Close()
		if err = r.DecodeFile(br, dst); err != nil {
			return err
		}
		return errors.WithStack(dst.Sync())
	}

	return r.DecodeTree(br, archive.NewDirWriter(out))
}

// progressLine renders the archive progress callback as a single
// rewritten terminal line.
func progressLine(c *cli.Context, total int64) archive.Progress {
	if c.Bool("quiet") {
		return nil
	}
	return func(done, reported int64) {
		if total == 0 {
			total = reported
		}
		if total > 0 {
			fmt.Printf("\r%5.1f%%", float64(done)*100/float64(total))
			return
		}
		fmt.Printf("\r%d B", done)
	}
}

func checkError(err error) {
	if err != nil {
		log.Printf("%+v\n", err)
		os.Exit(-1)
	}
}
