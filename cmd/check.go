package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "校验配置并列出关键词表",
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	tables := cfg.Tables()
	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	sort.Strings(names)

	out := cmd.OutOrStdout()
	for _, name := range names {
		table := tables[name]
		marker := " "
		if name == cfg.Chatbot.Table {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %s (%d 条规则)\n", marker, name, len(table.Rules))
		for i, rule := range table.Rules {
			fmt.Fprintf(out, "    %2d. %-12q -> %s\n", i+1, rule.Pattern, rule.Response)
		}
		fmt.Fprintf(out, "    默认: %s\n", table.Default)
	}

	// 不可达规则只作为警告，不影响退出码
	if n := cfg.WarnUnreachable(); n > 0 {
		fmt.Fprintf(out, "警告: 发现 %d 条不可达规则\n", n)
	}
	return nil
}
