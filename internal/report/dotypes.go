package report

import (
	"github.com/packagewjx/nmon-summary/pkg/core"
	"gorm.io/gorm"
	"math"
)

type NmonSummaryDO struct {
	gorm.Model
	NmonFile         string `gorm:"uniqueIndex;size:191"`
	Date             string
	LparName         string
	SystemModel      string
	MachineSerial    string
	ProcessorType    string
	core.LparMetrics `gorm:"embedded"`
	CpuP95           float64
	RunQueueP95      *float64 // 空值表示文件中没有PROC数据
	core.MemoryMetrics `gorm:"embedded"`
}

func (do *NmonSummaryDO) apply(result *core.FileResult) {
	do.NmonFile = result.NmonFile
	do.Date = result.Date
	do.LparName = result.LparName
	do.SystemModel = result.SystemModel
	do.MachineSerial = result.MachineSerial
	do.ProcessorType = result.ProcessorType
	do.LparMetrics = result.Lpar
	do.CpuP95 = result.CpuP95
	do.MemoryMetrics = result.Mem

	do.RunQueueP95 = nil
	if !math.IsNaN(result.RunQueueP95) {
		runQueue := result.RunQueueP95
		do.RunQueueP95 = &runQueue
	}
}
