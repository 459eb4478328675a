package payroll

import "math"

// NetPay is basic + allowances - deductions, rounded to cents. It is never
// stored; every read path calls this.
func NetPay(basic, allowances, deductions float64) float64 {
	return RoundMoney(basic + allowances - deductions)
}

func RoundMoney(amount float64) float64 {
	return math.Round(amount*100) / 100
}
