/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"github.com/packagewjx/nmon-summary/internal/summary"
	"github.com/packagewjx/nmon-summary/pkg/core"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"os"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info nmonFile",
	Short: "解析单个nmon文件并打印提取的指标",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("需要一个nmon文件参数")
		}
		_, err := os.Stat(args[0])
		if os.IsNotExist(err) {
			return fmt.Errorf("文件%s不存在", args[0])
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := summary.ProcessFile(args[0])
		if err != nil {
			return errors.Wrap(err, fmt.Sprintf("处理%s出错", args[0]))
		}

		row := result.Row()
		for i, header := range core.ReportHeader {
			value := row[i]
			if value == nil {
				value = "N/A"
			}
			fmt.Printf("%-22s: %v\n", header, value)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
