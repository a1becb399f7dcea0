package grocery

import (
	"bytes"
	"encoding/json"
	"math"
	"math/big"
	"sort"

	"github.com/shopspring/decimal"
)

// amountPlaces 無法以有限小數表示的累計值（如 1/3）輸出時保留的位數
const amountPlaces = 16

// Quantity 單一單位的累計數量
// Known 為 false 表示只收到未指定數量的貢獻（"as needed"）
type Quantity struct {
	Amount decimal.Decimal
	Known  bool

	// exact 累計的精確值；Amount 由此換算
	exact *big.Rat
}

// AsNeeded 未指定數量
func AsNeeded() Quantity {
	return Quantity{}
}

// Exactly 已知數量
func Exactly(amount decimal.Decimal) Quantity {
	return Quantity{Amount: amount, Known: true, exact: amount.Rat()}
}

func exactly(sum *big.Rat) Quantity {
	return Quantity{Amount: decimal.NewFromBigRat(sum, amountPlaces), Known: true, exact: sum}
}

// rat 精確值
func (q Quantity) rat() *big.Rat {
	if q.exact != nil {
		return q.exact
	}
	return q.Amount.Rat()
}

// MarshalJSON 已知數量輸出數字，否則輸出 null
func (q Quantity) MarshalJSON() ([]byte, error) {
	if !q.Known {
		return []byte("null"), nil
	}
	return []byte(q.Amount.String()), nil
}

// UnmarshalJSON 解析數字或 null
func (q *Quantity) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*q = AsNeeded()
		return nil
	}
	var amount decimal.Decimal
	if err := json.Unmarshal(data, &amount); err != nil {
		return err
	}
	*q = Exactly(amount)
	return nil
}

// Totals 每個單位的累計數量
type Totals map[Unit]Quantity

// Fold 將一筆 (單位, 數量) 貢獻併入累計
//   - rawValue 為 nil（或 NaN、Inf）：該單位尚未出現時標記為 as needed；已有數值時不變
//   - rawValue 有值：先乘 scale 再加總，覆蓋先前的 as needed 標記
func (t Totals) Fold(unit Unit, rawValue *float64, scale *big.Rat) {
	if rawValue == nil || math.IsNaN(*rawValue) || math.IsInf(*rawValue, 0) {
		if _, ok := t[unit]; !ok {
			t[unit] = AsNeeded()
		}
		return
	}

	scaled := decimal.NewFromFloat(*rawValue).Rat()
	scaled.Mul(scaled, scale)

	current, ok := t[unit]
	if ok && current.Known {
		scaled.Add(scaled, current.rat())
	}
	t[unit] = exactly(scaled)
}

// Units 依字母排序的單位列表
func (t Totals) Units() []Unit {
	units := make([]Unit, 0, len(t))
	for unit := range t {
		units = append(units, unit)
	}
	sort.Slice(units, func(i, j int) bool { return units[i] < units[j] })
	return units
}
