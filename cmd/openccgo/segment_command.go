package main

import (
	"fmt"
	"strings"

	"github.com/laisuk/opencc-jieba-go/internal/jieba"
)

type segmentCommand struct {
	Input  string `short:"i" long:"input" description:"Input file (stdin if omitted)"`
	Output string `short:"o" long:"output" description:"Output file (stdout if omitted)"`
	Delim  string `short:"d" long:"delim" default:" " description:"Token delimiter in output"`
	InEnc  string `long:"in-enc" description:"Input encoding (UTF-8, GB2312, GBK, GB18030, BIG5)"`
	OutEnc string `long:"out-enc" description:"Output encoding (UTF-8, GB2312, GBK, GB18030, BIG5)"`
}

func (c *segmentCommand) Execute(args []string) error {
	userCfg, err := loadUserConfig()
	if err != nil {
		return err
	}
	applyStringDefault(&c.InEnc, userCfg.InEnc)
	applyStringDefault(&c.OutEnc, userCfg.OutEnc)

	text, err := readInput(c.Input, c.InEnc)
	if err != nil {
		return fmt.Errorf("openccgo segment: %w", err)
	}

	tokens, err := jieba.NewCutter().Cut(text, true)
	if err != nil {
		return fmt.Errorf("openccgo segment: %w", err)
	}

	if err := writeOutput(c.Output, c.OutEnc, strings.Join(tokens, c.Delim)); err != nil {
		return fmt.Errorf("openccgo segment: %w", err)
	}
	return nil
}
