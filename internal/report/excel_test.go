package report

import (
	"github.com/packagewjx/nmon-summary/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
	"math"
	"path/filepath"
	"testing"
)

func TestWriteExcel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nmon_summary.xlsx")

	results := []*core.FileResult{
		{
			NmonFile:      "host1.nmon",
			Date:          "17-JUL-2024",
			LparName:      "host1",
			SystemModel:   "9080-M9S",
			MachineSerial: "1234ABC",
			ProcessorType: "POWER9",
			Lpar: core.LparMetrics{
				Snapshots: 4, Vp: 4, Entitled: 2, VpeRatio: 200, PoolCpu: 13, PoolIdle: 7.5,
				Weight: 128, Capped: 1, TotalCpu: 100, MinCpu: 10, AvgCpu: 25, MaxCpu: 40,
			},
			CpuP95:      38.5,
			RunQueueP95: 3.85,
			Mem:         core.MemoryMetrics{Count: 4, MinGb: 4, AvgGb: 5.5, MaxGb: 7, P95Gb: 6.85},
		},
		{
			NmonFile:      "host2.nmon",
			Date:          "01-AUG-2024",
			LparName:      "N/A",
			SystemModel:   "N/A",
			MachineSerial: "N/A",
			ProcessorType: "N/A",
			Lpar: core.LparMetrics{
				Snapshots: 2, Vp: 4, Entitled: 12, VpeRatio: 100.0 / 3, PoolCpu: 4, PoolIdle: 4,
				Weight: 200, Capped: 1, TotalCpu: 60, MinCpu: 20, AvgCpu: 30, MaxCpu: 40,
			},
			CpuP95:      6.9,
			RunQueueP95: math.NaN(),
			Mem:         core.MemoryMetrics{Count: 2, MinGb: 2, AvgGb: 2.5, MaxGb: 3, P95Gb: 2.95},
		},
	}

	err := WriteExcel(path, results)
	assert.NoError(t, err)

	f, err := excelize.OpenFile(path)
	assert.NoError(t, err)
	rows, err := f.GetRows(sheetName)
	assert.NoError(t, err)

	assert.Equal(t, 3, len(rows))
	assert.Equal(t, core.ReportHeader, rows[0])
	assert.Equal(t, len(core.ReportHeader), len(rows[1]))
	assert.Equal(t, "host1.nmon", rows[1][0])
	assert.Equal(t, "3.85", rows[1][19])

	// 没有运行队列数据时，对应单元格为空
	assert.Equal(t, "", rows[2][19])
	assert.Equal(t, len(core.ReportHeader), len(rows[2]))
}

func TestWriteExcelEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	err := WriteExcel(path, nil)
	assert.NoError(t, err)

	f, err := excelize.OpenFile(path)
	assert.NoError(t, err)
	rows, err := f.GetRows(sheetName)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(rows))
}
