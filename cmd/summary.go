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
	"github.com/packagewjx/nmon-summary/internal/report"
	"github.com/packagewjx/nmon-summary/internal/summary"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"log"
	"os"
	"sync/atomic"
	"time"
)

const (
	WorkerFlag    = "worker"
	MysqlHostFlag = "mysql-host"
)

const (
	DefaultInputDir   = "./NMON_Reports"
	DefaultOutputFile = "nmon_summary.xlsx"
	DefaultNumWorker  = 4
)

var numWorker int
var mysqlHost string

// summaryCmd represents the summary command
var summaryCmd = &cobra.Command{
	Use:   "summary [inputDir [outputFile]]",
	Short: "扫描目录中的nmon文件，生成容量规划汇总报表",
	Long: "扫描inputDir中所有.nmon文件，每个文件提取主机信息与CPU、运行队列、内存指标，\n" +
		"汇总为一行，全部写入outputFile指定的xlsx文件。单个文件出错只会跳过，不影响其他文件。\n" +
		"inputDir默认为" + DefaultInputDir + "，outputFile默认为" + DefaultOutputFile + "。",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 2 {
			return fmt.Errorf("参数过多")
		}
		if numWorker <= 0 {
			return fmt.Errorf("worker数量必须大于0")
		}

		inputDir := DefaultInputDir
		if len(args) > 0 {
			inputDir = args[0]
		}
		stat, err := os.Stat(inputDir)
		if os.IsNotExist(err) {
			return fmt.Errorf("输入目录%s不存在", inputDir)
		}
		if err == nil && !stat.IsDir() {
			return fmt.Errorf("%s不是目录", inputDir)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		inputDir := DefaultInputDir
		outputFile := DefaultOutputFile
		if len(args) > 0 {
			inputDir = args[0]
		}
		if len(args) > 1 {
			outputFile = args[1]
		}

		processed := int64(0)
		done := make(chan struct{})
		go func() {
			for {
				select {
				case <-done:
					return
				case <-time.After(time.Second):
					fmt.Printf("\r已处理%d个文件", atomic.LoadInt64(&processed))
				}
			}
		}()

		results, err := summary.ProcessDir(inputDir, numWorker, &processed)
		close(done)
		if err != nil {
			return err
		}
		fmt.Printf("\r处理完成，共%d个文件，有效结果%d条\n", atomic.LoadInt64(&processed), len(results))

		if err := report.WriteExcel(outputFile, results); err != nil {
			return errors.Wrap(err, "写入汇总报表出错")
		}
		log.Printf("汇总报表已写入%s\n", outputFile)

		host := mysqlHost
		if host == "" && os.Getenv("MYSQL_SERVICE_HOST") != "" {
			host = fmt.Sprintf("%s:%s",
				os.Getenv("MYSQL_SERVICE_HOST"), os.Getenv("MYSQL_SERVICE_PORT"))
		}
		if host != "" {
			dao, err := report.NewDao(host)
			if err != nil {
				return err
			}
			if err := dao.SaveSummaries(results); err != nil {
				return errors.Wrap(err, "保存汇总数据到数据库出错")
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)

	summaryCmd.Flags().IntVarP(&numWorker, WorkerFlag, "w", DefaultNumWorker,
		"并行处理文件的worker数量")
	summaryCmd.Flags().StringVar(&mysqlHost, MysqlHostFlag, "",
		"Mysql服务器主机端口，格式为host:port。若为空，则读取环境变量MYSQL_SERVICE_HOST与MYSQL_SERVICE_PORT取得。两者均为空时不保存到数据库")
}
