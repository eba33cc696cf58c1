package nmon

import (
	"github.com/packagewjx/nmon-summary/pkg/core"
	"strings"
)

// SystemInfo键
const (
	InfoDate          = "Date"
	InfoLparName      = "LPAR Name"
	InfoSystemModel   = "System Model"
	InfoMachineSerial = "Machine Serial Number"
	InfoProcessorType = "Processor Type"
)

// NotAvailable 文件中找不到对应信息时的取值
const NotAvailable = "N/A"

// SystemInfo 从头部行提取的主机信息。缺失的键读取时为N/A，不会存入
type SystemInfo map[string]string

func (s SystemInfo) Get(key string) string {
	if v, ok := s[key]; ok {
		return v
	}
	return NotAvailable
}

// parseSystemInfo 从一个非指标行提取主机信息并写入info。各个标记按
// 固定次序匹配，后出现的同类行覆盖先前的值。格式不对的行不会报错，
// 只是不写入对应的键
func parseSystemInfo(line string, info SystemInfo) {
	switch {
	case strings.Contains(line, "AAA,date"):
		record := strings.Split(line, core.Splitter)
		if len(record) >= 3 {
			info[InfoDate] = record[2]
		}
	case strings.Contains(line, "lparname"):
		record := strings.Split(line, core.Splitter)
		if len(record) >= 4 {
			info[InfoLparName] = strings.TrimSpace(record[3])
		}
	case strings.Contains(line, "System Model:"):
		segments := strings.Split(afterLastColon(line), core.Splitter)
		if len(segments) >= 2 {
			info[InfoSystemModel] = segments[1]
		}
	case strings.Contains(line, "Machine Serial Number:"):
		info[InfoMachineSerial] = afterLastColon(line)
	case strings.Contains(line, "Processor Type:"):
		segments := strings.Split(afterLastColon(line), "_")
		if len(segments) >= 2 {
			info[InfoProcessorType] = segments[1]
		}
	}
}

// afterLastColon 取最后一个冒号之后的内容，去掉两端空白与引号
func afterLastColon(line string) string {
	idx := strings.LastIndex(line, ":")
	return strings.Trim(strings.TrimSpace(line[idx+1:]), "\"")
}
