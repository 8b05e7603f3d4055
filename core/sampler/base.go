package sampler

// BaseSampler は全てのサンプラーの基底となる構造体
// 密度評価回数とサンプル数の診断カウンタを保持する
type BaseSampler struct {
	evals int
	draws int
}

// Evals はこれまでの対数密度の評価回数を返す
func (b *BaseSampler) Evals() int {
	return b.evals
}

// Draws はこれまでに生成されたサンプル数を返す
func (b *BaseSampler) Draws() int {
	return b.draws
}

// CountEval は密度評価カウンタを1増やす
func (b *BaseSampler) CountEval() {
	b.evals++
}

// AddEvals は密度評価カウンタをn増やす
// 内部サンプラーのカウンタを集計する場合に使う
func (b *BaseSampler) AddEvals(n int) {
	b.evals += n
}

// CountDraw はサンプルカウンタを1増やす
func (b *BaseSampler) CountDraw() {
	b.draws++
}

// ResetCounters はカウンタを初期状態にリセットする
// サンプラーの状態そのものには影響しない
func (b *BaseSampler) ResetCounters() {
	b.evals = 0
	b.draws = 0
}
