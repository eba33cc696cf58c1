package summary

import (
	"github.com/packagewjx/nmon-summary/internal/nmon"
	"github.com/packagewjx/nmon-summary/pkg/core"
	"github.com/pkg/errors"
	"path/filepath"
)

// ErrNoLparData 文件中没有任何有效LPAR记录。这类文件不产生结果行，
// 批处理输出警告后继续
var ErrNoLparData = errors.New("文件中没有LPAR数据")

// ProcessFile 处理一个nmon文件，产生汇总报表的一行。返回ErrNoLparData
// 表示文件缺少LPAR数据，其他错误表示文件无法处理，调用方应跳过该文件
func ProcessFile(path string) (*core.FileResult, error) {
	data, err := nmon.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if len(data.Lpar) == 0 {
		return nil, ErrNoLparData
	}

	lpar := nmon.ReduceLpar(data.Lpar, data.Os)

	cpuP95, err := nmon.CpuPercentile(data.Lpar, data.Os)
	if err != nil {
		return nil, errors.Wrap(err, "计算CPU 95分位数出错")
	}

	runQueueP95, err := nmon.RunQueuePercentile(data.Proc)
	if err != nil {
		return nil, errors.Wrap(err, "计算运行队列95分位数出错")
	}

	mem := nmon.ReduceMemory(data.Mem, data.Os)

	return &core.FileResult{
		NmonFile:      filepath.Base(path),
		Date:          data.Info.Get(nmon.InfoDate),
		LparName:      data.Info.Get(nmon.InfoLparName),
		SystemModel:   data.Info.Get(nmon.InfoSystemModel),
		MachineSerial: data.Info.Get(nmon.InfoMachineSerial),
		ProcessorType: data.Info.Get(nmon.InfoProcessorType),
		Lpar:          lpar,
		CpuP95:        cpuP95,
		RunQueueP95:   runQueueP95,
		Mem:           mem,
	}, nil
}
