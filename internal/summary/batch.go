package summary

import (
	"github.com/packagewjx/nmon-summary/pkg/core"
	"github.com/pkg/errors"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
)

const NmonFileSuffix = ".nmon"

var batchLogger = log.New(os.Stdout, "summary: ", log.LstdFlags|log.Lshortfile|log.Lmsgprefix)

// ProcessDir 处理目录中所有nmon文件，返回成功处理的文件的结果。结果
// 顺序与目录中文件名的顺序一致。单个文件出错只会输出信息并跳过，不会
// 中断整个批次。numWorker控制并行处理的文件数量。processed每处理完
// 一个文件加1，供调用方显示进度
func ProcessDir(dir string, numWorker int, processed *int64) ([]*core.FileResult, error) {
	infos, err := ioutil.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, "读取输入目录出错")
	}

	files := make([]string, 0, len(infos))
	for _, info := range infos {
		if !info.IsDir() && strings.HasSuffix(info.Name(), NmonFileSuffix) {
			files = append(files, filepath.Join(dir, info.Name()))
		}
	}

	// 各文件相互独立，按下标写入各自的结果，输出顺序与输入顺序一致
	results := make([]*core.FileResult, len(files))
	wg := sync.WaitGroup{}
	sem := make(chan struct{}, numWorker)
	for i, file := range files {
		wg.Add(1)
		go func(idx int, path string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() {
				<-sem
			}()

			result, err := ProcessFile(path)
			if err == ErrNoLparData {
				batchLogger.Printf("警告：%s中没有LPAR数据，已跳过\n", path)
			} else if err != nil {
				batchLogger.Printf("处理%s出错：%v\n", path, err)
			} else {
				results[idx] = result
			}
			atomic.AddInt64(processed, 1)
		}(i, file)
	}
	wg.Wait()

	out := make([]*core.FileResult, 0, len(results))
	for _, result := range results {
		if result != nil {
			out = append(out, result)
		}
	}
	return out, nil
}
