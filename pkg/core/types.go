package core

import "math"

const LineBreak = '\n'

const Splitter = ","

// OsFlavor nmon日志来源的操作系统。一个文件只属于一种操作系统，
// 默认为Linux，扫描到AIX签名行后变为AIX。
type OsFlavor string

const (
	OsAix   = OsFlavor("AIX")
	OsLinux = OsFlavor("Linux")
)

// LparMetrics 从一个文件的LPAR记录计算出的CPU与容量指标。
// 字段顺序与汇总报表的列顺序一致，不能改动。
type LparMetrics struct {
	Snapshots int
	Vp        float64 // 虚拟处理器数量
	Entitled  float64 // 授权容量E
	VpeRatio  float64 // VP与E之比乘以100。E为0时为0
	PoolCpu   float64
	PoolIdle  float64
	Weight    float64
	Capped    float64
	TotalCpu  float64
	MinCpu    float64
	AvgCpu    float64
	MaxCpu    float64
}

// MemoryMetrics 从MEM记录计算出的已用内存指标，单位为GB
type MemoryMetrics struct {
	Count int
	MinGb float64
	AvgGb float64
	MaxGb float64
	P95Gb float64
}

// FileResult 一个nmon文件的汇总结果，对应报表中的一行
type FileResult struct {
	NmonFile      string
	Date          string
	LparName      string
	SystemModel   string
	MachineSerial string
	ProcessorType string
	Lpar          LparMetrics
	CpuP95        float64
	RunQueueP95   float64 // NaN表示文件中没有PROC数据
	Mem           MemoryMetrics
}

// ReportHeader 汇总报表的列。每行固定25列
var ReportHeader = []string{
	"nmonfile", "Date", "LPAR Name", "System Model", "Machine Serial Number", "Processor Type",
	"Snapshots", "VP", "Entitled CPU", "VP:E", "Pool CPU", "Pool Idle", "Weight",
	"Capped", "Total CPU", "Min CPU", "Avg CPU", "Max CPU", "95 Percentile CPU", "Run Queue 95",
	"Count Mem", "Min MEM Used", "Avg MEM Used", "Max MEM Used", "95 percentile GB",
}

// Row 按ReportHeader的顺序返回本结果的各个字段。RunQueueP95为NaN时输出nil，
// 写入表格时为空单元格
func (r *FileResult) Row() []interface{} {
	runQueue := interface{}(r.RunQueueP95)
	if math.IsNaN(r.RunQueueP95) {
		runQueue = nil
	}

	return []interface{}{
		r.NmonFile, r.Date, r.LparName, r.SystemModel, r.MachineSerial, r.ProcessorType,
		r.Lpar.Snapshots, r.Lpar.Vp, r.Lpar.Entitled, r.Lpar.VpeRatio, r.Lpar.PoolCpu, r.Lpar.PoolIdle,
		r.Lpar.Weight, r.Lpar.Capped, r.Lpar.TotalCpu, r.Lpar.MinCpu, r.Lpar.AvgCpu, r.Lpar.MaxCpu,
		r.CpuP95, runQueue,
		r.Mem.Count, r.Mem.MinGb, r.Mem.AvgGb, r.Mem.MaxGb, r.Mem.P95Gb,
	}
}
