package report

import (
	"fmt"
	"github.com/packagewjx/nmon-summary/pkg/core"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Sheet1"

// WriteExcel 把汇总结果写入xlsx文件。第一行为表头，之后每个结果一行，
// 每行固定25列。没有运行队列数据的行，对应单元格为空
func WriteExcel(path string, results []*core.FileResult) error {
	f := excelize.NewFile()

	if err := f.SetSheetRow(sheetName, "A1", &core.ReportHeader); err != nil {
		return errors.Wrap(err, "写入表头出错")
	}

	for i, result := range results {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return errors.Wrap(err, "计算单元格位置出错")
		}
		row := result.Row()
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return errors.Wrap(err, fmt.Sprintf("写入%s的数据出错", result.NmonFile))
		}
	}

	return errors.Wrap(f.SaveAs(path), "保存xlsx文件出错")
}
