package utils

import (
	"fmt"
	"github.com/pkg/errors"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Sum 返回数组所有元素之和
func Sum(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum
}

// Min 返回数组的最小值。空数组返回NaN
func Min(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	min := values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// Max 返回数组的最大值。空数组返回NaN
func Max(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// Percentile 计算p分位数，p取值为0到1。使用线性插值，即排序后取
// rank=p*(n-1)处的值，rank不是整数时在相邻两个值之间插值。空数组返回NaN
func Percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	rank := p * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	return sorted[lo] + (rank-float64(lo))*(sorted[hi]-sorted[lo])
}

// ColumnValues 提取所有记录第col列的数值。任何一条记录列数不足或
// 不是数值时返回错误
func ColumnValues(records [][]string, col int) ([]float64, error) {
	values := make([]float64, len(records))
	for i, record := range records {
		if col >= len(record) {
			return nil, fmt.Errorf("第%d条记录只有%d列，取不到第%d列", i+1, len(record), col)
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(record[col]), 64)
		if err != nil {
			return nil, errors.Wrap(err, fmt.Sprintf("第%d条记录第%d列不是数值，值为%s", i+1, col, record[col]))
		}
		values[i] = f
	}
	return values, nil
}
