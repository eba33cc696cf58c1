package nmon

import (
	"bufio"
	"github.com/packagewjx/nmon-summary/pkg/core"
	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"
	"io"
	"log"
	"os"
	"strings"
)

const (
	aixSignaturePrefix = "AAA,AIX"
	lparPrefix         = "LPAR,T"
	procPrefix         = "PROC,T"
	memPrefix          = "MEM,T"
)

const (
	minLparFields = 14
	minProcFields = 3
	minMemFields  = 8
)

var defaultLogger = log.New(os.Stdout, "nmon: ", log.LstdFlags|log.Lshortfile|log.Lmsgprefix)

// FileData 一个nmon文件扫描后的全部内容。各个记录集合保持日志中的顺序，
// 即采样时间顺序
type FileData struct {
	Os   core.OsFlavor
	Lpar [][]string
	Proc [][]string
	Mem  [][]string
	Info SystemInfo
}

// ReadFile 打开并扫描一个nmon文件。nmon日志使用ISO-8859-1编码，
// 可能含有非UTF-8字节，因此经过解码器读取，任何字节都不会导致失败
func ReadFile(path string) (*FileData, error) {
	fin, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "打开nmon文件出错")
	}
	defer func() {
		_ = fin.Close()
	}()

	return Read(charmap.ISO8859_1.NewDecoder().Reader(fin), defaultLogger)
}

// Read 逐行扫描nmon日志，按行首标记分类记录。分类优先级：AIX签名行、
// LPAR行、PROC行、MEM行，其余交给parseSystemInfo。列数不足的LPAR与
// PROC行丢弃并输出警告，列数不足的MEM行直接丢弃，不输出警告
func Read(r io.Reader, logger *log.Logger) (*FileData, error) {
	reader := bufio.NewReader(r)
	data := &FileData{
		Os:   core.OsLinux,
		Info: SystemInfo{},
	}

	var line string
	var err error
	lineNum := 0
	for line, err = reader.ReadString(core.LineBreak); err == nil || (line != "" && err == io.EOF); line, err = reader.ReadString(core.LineBreak) {
		lineNum++
		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		switch {
		case strings.HasPrefix(line, aixSignaturePrefix):
			// 签名行可能出现在文件任何位置，对整个文件生效
			data.Os = core.OsAix
		case strings.HasPrefix(line, lparPrefix):
			record := strings.Split(line, core.Splitter)
			if len(record) >= minLparFields {
				data.Lpar = append(data.Lpar, record)
			} else {
				logger.Printf("警告：第%d行LPAR记录格式不对，内容为：%s\n", lineNum, line)
			}
		case strings.HasPrefix(line, procPrefix):
			record := strings.Split(line, core.Splitter)
			if len(record) >= minProcFields {
				data.Proc = append(data.Proc, record)
			} else {
				logger.Printf("警告：第%d行PROC记录格式不对，内容为：%s\n", lineNum, line)
			}
		case strings.HasPrefix(line, memPrefix):
			record := strings.Split(line, core.Splitter)
			if len(record) >= minMemFields {
				data.Mem = append(data.Mem, record)
			}
		default:
			parseSystemInfo(line, data.Info)
		}
	}

	if err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "读取nmon内容出错")
	}

	return data, nil
}
