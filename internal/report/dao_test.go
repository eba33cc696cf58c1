package report

import (
	"fmt"
	"github.com/packagewjx/nmon-summary/pkg/core"
	"github.com/stretchr/testify/assert"
	"math"
	"os"
	"strings"
	"testing"
)

func TestDao(t *testing.T) {
	host := os.Getenv("MYSQL_SERVICE_HOST")
	if host == "" {
		t.Skip("未设置MYSQL_SERVICE_HOST，跳过数据库测试")
	}

	dao, err := NewDao(fmt.Sprintf("%s:%s", host, os.Getenv("MYSQL_SERVICE_PORT")))
	assert.NoError(t, err)

	results := []*core.FileResult{
		{
			NmonFile: "dao_test_host1.nmon",
			Date:     "17-JUL-2024",
			Lpar:     core.LparMetrics{Snapshots: 4, Vp: 4, Entitled: 2, VpeRatio: 200, TotalCpu: 100},
			CpuP95:   38.5, RunQueueP95: 3.85,
			Mem: core.MemoryMetrics{Count: 4, MinGb: 4, AvgGb: 5.5, MaxGb: 7, P95Gb: 6.85},
		},
		{
			NmonFile:    "dao_test_host2.nmon",
			Date:        "01-AUG-2024",
			Lpar:        core.LparMetrics{Snapshots: 2},
			RunQueueP95: math.NaN(),
		},
	}

	err = dao.SaveSummaries(results)
	assert.NoError(t, err)

	// 再次保存应更新已有记录而不是报错
	results[0].CpuP95 = 40
	err = dao.SaveSummaries(results)
	assert.NoError(t, err)

	record := &NmonSummaryDO{}
	err = dao.DB().First(record, &NmonSummaryDO{NmonFile: "dao_test_host1.nmon"}).Error
	assert.NoError(t, err)
	assert.Equal(t, 40.0, record.CpuP95)
	assert.NotNil(t, record.RunQueueP95)

	record = &NmonSummaryDO{}
	err = dao.DB().First(record, &NmonSummaryDO{NmonFile: "dao_test_host2.nmon"}).Error
	assert.NoError(t, err)
	assert.Nil(t, record.RunQueueP95)

	dao.DB().Unscoped().Where("nmon_file LIKE ?", "dao_test_%").Delete(&NmonSummaryDO{})
}

func TestSaveSummariesUpdateError(t *testing.T) {
	host := os.Getenv("MYSQL_SERVICE_HOST")
	if host == "" {
		t.Skip("未设置MYSQL_SERVICE_HOST，跳过数据库测试")
	}

	dao, err := NewDao(fmt.Sprintf("%s:%s", host, os.Getenv("MYSQL_SERVICE_PORT")))
	assert.NoError(t, err)

	results := []*core.FileResult{
		{
			NmonFile:    "dao_test_host3.nmon",
			Date:        "17-JUL-2024",
			RunQueueP95: math.NaN(),
		},
	}
	err = dao.SaveSummaries(results)
	assert.NoError(t, err)

	// 更新已有记录失败时必须返回错误，不能静默成功
	results[0].Date = strings.Repeat("x", 300)
	err = dao.SaveSummaries(results)
	assert.Error(t, err)

	dao.DB().Unscoped().Where("nmon_file LIKE ?", "dao_test_%").Delete(&NmonSummaryDO{})
}
