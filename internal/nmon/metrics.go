package nmon

import (
	"github.com/packagewjx/nmon-summary/internal/utils"
	"github.com/packagewjx/nmon-summary/pkg/core"
	"github.com/pkg/errors"
	"log"
	"math"
)

// ReduceLpar 按操作系统把LPAR记录集合计算为固定的12个指标。记录为空
// 或任何字段无法转换为数值时，返回全0的LparMetrics并输出错误信息，
// 不中断文件的处理
func ReduceLpar(records [][]string, flavor core.OsFlavor) core.LparMetrics {
	var metrics core.LparMetrics
	var err error
	if flavor == core.OsAix {
		metrics, err = reduceAixLpar(records)
	} else {
		metrics, err = reduceLinuxLpar(records)
	}
	if err != nil {
		log.Printf("计算%s的LPAR指标出错：%v\n", flavor, err)
		return core.LparMetrics{}
	}
	return metrics
}

func reduceAixLpar(records [][]string) (core.LparMetrics, error) {
	if len(records) == 0 {
		return core.LparMetrics{}, errors.New("没有LPAR记录")
	}

	cpu, err := utils.ColumnValues(records, aixLparColumns.Cpu)
	if err != nil {
		return core.LparMetrics{}, errors.Wrap(err, "解析CPU列出错")
	}
	vp, err := utils.ColumnValues(records, aixLparColumns.VirtualProcessor)
	if err != nil {
		return core.LparMetrics{}, errors.Wrap(err, "解析VP列出错")
	}
	entitled, err := utils.ColumnValues(records, aixLparColumns.Entitled)
	if err != nil {
		return core.LparMetrics{}, errors.Wrap(err, "解析Entitled列出错")
	}
	poolCpu, err := utils.ColumnValues(records, aixLparColumns.PoolCpu)
	if err != nil {
		return core.LparMetrics{}, errors.Wrap(err, "解析Pool CPU列出错")
	}
	poolIdle, err := utils.ColumnValues(records, aixLparColumns.PoolIdle)
	if err != nil {
		return core.LparMetrics{}, errors.Wrap(err, "解析Pool Idle列出错")
	}
	weight, err := utils.ColumnValues(records, aixLparColumns.Weight)
	if err != nil {
		return core.LparMetrics{}, errors.Wrap(err, "解析Weight列出错")
	}
	capped, err := utils.ColumnValues(records, aixLparColumns.Capped)
	if err != nil {
		return core.LparMetrics{}, errors.Wrap(err, "解析Capped列出错")
	}

	metrics := core.LparMetrics{
		Snapshots: len(records),
		Vp:        utils.Min(vp),
		Entitled:  utils.Min(entitled),
		PoolCpu:   utils.Min(poolCpu),
		PoolIdle:  utils.Min(poolIdle),
		Weight:    utils.Min(weight),
		Capped:    utils.Min(capped),
		TotalCpu:  utils.Sum(cpu),
		MinCpu:    utils.Min(cpu),
		MaxCpu:    utils.Max(cpu),
	}
	metrics.AvgCpu = metrics.TotalCpu / float64(metrics.Snapshots)
	if metrics.Entitled > 0 {
		metrics.VpeRatio = metrics.Vp / metrics.Entitled * 100
	}
	return metrics, nil
}

func reduceLinuxLpar(records [][]string) (core.LparMetrics, error) {
	if len(records) == 0 {
		return core.LparMetrics{}, errors.New("没有LPAR记录")
	}

	cpu, err := utils.ColumnValues(records, linuxLparColumns.Cpu)
	if err != nil {
		return core.LparMetrics{}, errors.Wrap(err, "解析CPU列出错")
	}
	vp, err := utils.ColumnValues(records, linuxLparColumns.VirtualProcessor)
	if err != nil {
		return core.LparMetrics{}, errors.Wrap(err, "解析VP列出错")
	}
	entitled, err := utils.ColumnValues(records, linuxLparColumns.Entitled)
	if err != nil {
		return core.LparMetrics{}, errors.Wrap(err, "解析Entitled列出错")
	}
	poolCpu, err := utils.ColumnValues(records, linuxLparColumns.PoolCpu)
	if err != nil {
		return core.LparMetrics{}, errors.Wrap(err, "解析Pool CPU列出错")
	}
	poolIdle, err := utils.ColumnValues(records, linuxLparColumns.PoolIdle)
	if err != nil {
		return core.LparMetrics{}, errors.Wrap(err, "解析Pool Idle列出错")
	}
	weight, err := utils.ColumnValues(records, linuxLparColumns.Weight)
	if err != nil {
		return core.LparMetrics{}, errors.Wrap(err, "解析Weight列出错")
	}
	capped, err := utils.ColumnValues(records, linuxLparColumns.Capped)
	if err != nil {
		return core.LparMetrics{}, errors.Wrap(err, "解析Capped列出错")
	}

	metrics := core.LparMetrics{
		Snapshots: len(records),
		Vp:        utils.Sum(vp),
		Entitled:  utils.Sum(entitled),
		PoolCpu:   utils.Sum(poolCpu) / 100,
		PoolIdle:  utils.Sum(poolIdle),
		Weight:    utils.Sum(weight),
		Capped:    utils.Sum(capped),
		TotalCpu:  utils.Sum(cpu),
		MinCpu:    utils.Min(cpu),
		MaxCpu:    utils.Max(cpu),
	}
	metrics.AvgCpu = metrics.TotalCpu / float64(metrics.Snapshots)
	if metrics.Entitled > 0 {
		metrics.VpeRatio = metrics.Vp / metrics.Entitled * 100
	}
	return metrics, nil
}

// CpuPercentile 计算LPAR记录CPU使用率的95分位数。使用的列由操作系统
// 决定，与LparMetrics内部的CPU聚合相互独立
func CpuPercentile(records [][]string, flavor core.OsFlavor) (float64, error) {
	col := linuxCpuPercentileColumn
	if flavor == core.OsAix {
		col = aixCpuPercentileColumn
	}
	values, err := utils.ColumnValues(records, col)
	if err != nil {
		return 0, errors.Wrap(err, "解析CPU使用率数据出错")
	}
	return utils.Percentile(values, 0.95), nil
}

// RunQueuePercentile 计算PROC记录中运行队列的95分位数。没有PROC记录时
// 返回NaN，表示没有数据而不是0
func RunQueuePercentile(records [][]string) (float64, error) {
	if len(records) == 0 {
		return math.NaN(), nil
	}
	values, err := utils.ColumnValues(records, procRunQueueColumn)
	if err != nil {
		return 0, errors.Wrap(err, "解析运行队列数据出错")
	}
	return utils.Percentile(values, 0.95), nil
}

// ReduceMemory 按操作系统把MEM记录计算为已用内存指标。每条记录的已用
// 内存为Total列减Free列，单位KB，统计值除以1024换算为GB。记录为空或
// 字段无法转换时返回全0的MemoryMetrics并输出错误信息
func ReduceMemory(records [][]string, flavor core.OsFlavor) core.MemoryMetrics {
	cols := linuxMemColumns
	if flavor == core.OsAix {
		cols = aixMemColumns
	}

	metrics, err := reduceMemory(records, cols)
	if err != nil {
		log.Printf("计算%s的内存指标出错：%v\n", flavor, err)
		return core.MemoryMetrics{}
	}
	return metrics
}

func reduceMemory(records [][]string, cols memColumns) (core.MemoryMetrics, error) {
	if len(records) == 0 {
		return core.MemoryMetrics{}, errors.New("没有MEM记录")
	}

	total, err := utils.ColumnValues(records, cols.Total)
	if err != nil {
		return core.MemoryMetrics{}, errors.Wrap(err, "解析内存总量列出错")
	}
	free, err := utils.ColumnValues(records, cols.Free)
	if err != nil {
		return core.MemoryMetrics{}, errors.Wrap(err, "解析空闲内存列出错")
	}

	used := make([]float64, len(records))
	for i := range used {
		used[i] = total[i] - free[i]
	}

	return core.MemoryMetrics{
		Count: len(records),
		MinGb: utils.Min(used) / 1024,
		AvgGb: utils.Sum(used) / float64(len(used)) / 1024,
		MaxGb: utils.Max(used) / 1024,
		P95Gb: utils.Percentile(used, 0.95) / 1024,
	}, nil
}
