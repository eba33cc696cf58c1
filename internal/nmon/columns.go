package nmon

// 本文件集中定义nmon日志中各逻辑字段所在的列号，列号从0开始。
// AIX与Linux的LPAR行布局不同，聚合方式也不同：AIX的容量字段取
// 所有采样的最小值，Linux的则累加。

type lparColumns struct {
	Cpu              int // CPU使用率
	VirtualProcessor int
	Entitled         int
	PoolCpu          int
	PoolIdle         int
	Weight           int
	Capped           int
}

var aixLparColumns = lparColumns{
	Cpu:              2,
	VirtualProcessor: 3,
	Entitled:         6,
	PoolCpu:          5,
	PoolIdle:         8,
	Weight:           7,
	Capped:           12,
}

var linuxLparColumns = lparColumns{
	Cpu:              2,
	VirtualProcessor: 13,
	Entitled:         10,
	PoolCpu:          8, // 记录的是百分比，累加后除以100
	PoolIdle:         21,
	Weight:           16,
	Capped:           4,
}

// CPU 95分位数使用的列。独立于LparMetrics的CPU聚合计算
const (
	aixCpuPercentileColumn   = 2
	linuxCpuPercentileColumn = 10
)

// PROC行中运行队列所在的列
const procRunQueueColumn = 2

// MEM行中计算已用内存的列，used = Total列 - Free列，单位为KB
type memColumns struct {
	Total int
	Free  int
}

var aixMemColumns = memColumns{Total: 6, Free: 4}

var linuxMemColumns = memColumns{Total: 2, Free: 7}
