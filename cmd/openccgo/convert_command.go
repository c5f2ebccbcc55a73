package main

import (
	"fmt"

	"github.com/laisuk/opencc-jieba-go/dictionary"
	"github.com/laisuk/opencc-jieba-go/internal/jieba"
	"github.com/laisuk/opencc-jieba-go/opencc"
)

type convertCommand struct {
	Input  string `short:"i" long:"input" description:"Input file (stdin if omitted)"`
	Output string `short:"o" long:"output" description:"Output file (stdout if omitted)"`
	Config string `short:"c" long:"config" description:"Conversion config, e.g. s2t, tw2sp"`
	Punct  bool   `short:"p" long:"punct" description:"Apply punctuation mapping"`
	InEnc  string `long:"in-enc" description:"Input encoding (UTF-8, GB2312, GBK, GB18030, BIG5)"`
	OutEnc string `long:"out-enc" description:"Output encoding (UTF-8, GB2312, GBK, GB18030, BIG5)"`
}

func (c *convertCommand) Execute(args []string) error {
	userCfg, err := loadUserConfig()
	if err != nil {
		return err
	}
	applyStringDefault(&c.Config, userCfg.Config)
	applyStringDefault(&c.InEnc, userCfg.InEnc)
	applyStringDefault(&c.OutEnc, userCfg.OutEnc)
	applyBoolDefault(&c.Punct, userCfg.Punct)

	if _, err := opencc.ParseConfig(c.Config); err != nil {
		return fmt.Errorf("openccgo convert: %w", err)
	}

	text, err := readInput(c.Input, c.InEnc)
	if err != nil {
		return fmt.Errorf("openccgo convert: %w", err)
	}

	dict, err := dictionary.New()
	if err != nil {
		return fmt.Errorf("openccgo convert: dictionary load: %w", err)
	}
	o := opencc.New(dict, jieba.NewCutter())

	result := o.Convert(text, c.Config, c.Punct)

	if err := writeOutput(c.Output, c.OutEnc, result); err != nil {
		return fmt.Errorf("openccgo convert: %w", err)
	}
	return nil
}
