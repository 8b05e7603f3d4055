// Package errors はプロジェクト全体のエラーハンドリングと警告システムを提供します。
// MCMCサンプリング特有の失敗モード（非有限な対数密度、ブラケット拡張の発散など）を
// 構造化されたエラー情報として提供します。
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	グローバル警告ハンドリング
//
// ===========================================================================
var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		// デフォルトのハンドラは標準エラー出力にログを出す
		log.Printf("MCGo-Warning: %v\n", w)
	}
	// zerologロガー（循環importを避けるため遅延初期化）
	zerologWarnFunc func(warning error)
)

// SetWarningHandler はMCGoライブラリ全体の警告ハンドラを設定します。
// これにより、MixingWarningなどのカスタム警告の処理方法を制御できます。
//
// 例:
//
//	errors.SetWarningHandler(func(w error) {
//	    // 警告を無視する
//	})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc はzerolog警告関数を設定します（循環importを避けるため）。
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn は警告を発生させます。
// zerologが利用可能な場合は構造化ログとして出力し、そうでなければ従来のハンドラを使用します。
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	// zerologが設定されている場合は優先的に使用
	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}

	// フォールバック: 従来のハンドラ
	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	サンプリング警告型
//
// ===========================================================================

// MixingWarning はチェーンの実効サンプルサイズが小さく、混合が悪い場合に発生する警告です。
type MixingWarning struct {
	Sampler string
	ESS     float64
	Length  int
}

func (w *MixingWarning) Error() string {
	return fmt.Sprintf("%s chain of length %d has effective sample size %.1f. Consider longer runs or a wider step width.", w.Sampler, w.Length, w.ESS)
}

// MarshalZerologObject はzerologのイベントに構造化された警告情報を追加します。
func (w *MixingWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("sampler", w.Sampler).
		Float64("ess", w.ESS).
		Int("length", w.Length).
		Str("type", "MixingWarning")
}

// NewMixingWarning は新しいMixingWarningを作成します。
func NewMixingWarning(sampler string, ess float64, length int) *MixingWarning {
	return &MixingWarning{Sampler: sampler, ESS: ess, Length: length}
}

// ShrinkWarning は縮小ループが多数の棄却を要した場合に発生する警告です。
// ステップ幅がターゲット分布のスケールに対して大きすぎる可能性を示します。
type ShrinkWarning struct {
	Sampler    string
	Rejections int
	Width      float64
}

func (w *ShrinkWarning) Error() string {
	return fmt.Sprintf("%s needed %d shrink rejections at width %g. Step width may be too large for the target scale.", w.Sampler, w.Rejections, w.Width)
}

// MarshalZerologObject はzerologのイベントに構造化された警告情報を追加します。
func (w *ShrinkWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("sampler", w.Sampler).
		Int("rejections", w.Rejections).
		Float64("width", w.Width).
		Str("type", "ShrinkWarning")
}

// NewShrinkWarning は新しいShrinkWarningを作成します。
func NewShrinkWarning(sampler string, rejections int, width float64) *ShrinkWarning {
	return &ShrinkWarning{Sampler: sampler, Rejections: rejections, Width: width}
}

// ===========================================================================
//
//	構造化されたエラー型
//
// ===========================================================================

// DensityError はターゲットの対数密度が非有限な値（NaNまたは+Inf）を返した場合のエラーです。
// -Infはゼロ確率領域の規約として有効であり、このエラーにはなりません。
type DensityError struct {
	Op    string
	X     []float64 // 評価点
	Value float64   // 返された対数密度
}

func (e *DensityError) Error() string {
	if len(e.X) == 1 {
		return fmt.Sprintf("mcgo: %s: log-density returned non-finite value %v at x=%g", e.Op, e.Value, e.X[0])
	}
	return fmt.Sprintf("mcgo: %s: log-density returned non-finite value %v at x=%v", e.Op, e.Value, e.X)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *DensityError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Floats64("x", e.X).
		Float64("value", e.Value).
		Str("type", "DensityError")
}

// NewDensityError は新しいDensityErrorを作成し、スタックトレースを付与します。
func NewDensityError(op string, x []float64, value float64) error {
	err := &DensityError{Op: op, X: x, Value: value}
	return errors.WithStack(err)
}

// ExpansionError はスライスのブラケット操作が設定された反復上限を超えた場合のエラーです。
// Phaseは "step-out"（拡張）または "shrink"（縮小）のいずれかです。
type ExpansionError struct {
	Op    string
	Phase string
	Steps int
	Width float64
}

func (e *ExpansionError) Error() string {
	return fmt.Sprintf("mcgo: %s: %s exceeded %d iterations at width %g. The target may be unbounded or degenerate; adjust the step width or raise the cap", e.Op, e.Phase, e.Steps, e.Width)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *ExpansionError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("phase", e.Phase).
		Int("steps", e.Steps).
		Float64("width", e.Width).
		Str("type", "ExpansionError")
}

// NewExpansionError は新しいExpansionErrorを作成し、スタックトレースを付与します。
func NewExpansionError(op, phase string, steps int, width float64) error {
	err := &ExpansionError{Op: op, Phase: phase, Steps: steps, Width: width}
	return errors.WithStack(err)
}

// DimensionError は方向ベクトルや遷移関数の出力が状態の形状と一致しない場合のエラーです。
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Index    int // 該当する方向またはブロックの添字
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("mcgo: %s: dimension mismatch at index %d. Expected %d, got %d", e.Op, e.Index, e.Expected, e.Got)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("index", e.Index).
		Str("type", "DimensionError")
}

// NewDimensionError は新しいDimensionErrorを作成し、スタックトレースを付与します。
func NewDimensionError(op string, expected, got, index int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got, Index: index}
	return errors.WithStack(err)
}

// ValidationError は入力パラメータの検証に失敗した場合のエラーです。
// `ValueError`よりも具体的なバリデーションロジックの失敗を示します。
type ValidationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("mcgo: validation failed for parameter '%s': %s (got: %v)", e.ParamName, e.Reason, e.Value)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *ValidationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param_name", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "ValidationError")
}

// NewValidationError は新しいValidationErrorを作成し、スタックトレースを付与します。
func NewValidationError(param, reason string, value interface{}) error {
	err := &ValidationError{ParamName: param, Reason: reason, Value: value}
	return errors.WithStack(err)
}

// ValueError は引数の値が不適切または不正な場合に発生するエラーです。
// 例えば、ステップ幅に負の数を渡した場合など。
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("mcgo: %s: %s", e.Op, e.Message)
}

// NewValueError は新しいValueErrorを作成し、スタックトレースを付与します。
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	cockroachdb/errors ラッパー関数
//
// ===========================================================================

// Is はエラーが特定のターゲットエラーかどうかを判定します。
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As はエラーが特定の型にキャスト可能かどうかを判定します。
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap は既存のエラーをメッセージ付きでラップします。
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf は既存のエラーをフォーマット文字列でラップします。
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New は新しいエラーを作成します。
func New(message string) error {
	return errors.New(message)
}

// Newf は新しいフォーマット済みエラーを作成します。
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack はエラーにスタックトレースを付与します。
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	数値計算特有のエラー型
//
// ===========================================================================

// NumericalInstabilityError は数値計算が不安定になった場合のエラーです。
// NaN、Inf、オーバーフロー、アンダーフローなどを検出します。
type NumericalInstabilityError struct {
	Operation string    // 発生した操作（例: "slice.Sample", "gibbs.weight_update"）
	Values    []float64 // 問題のある値
	Iteration int       // 発生したイテレーション番号
}

func (e *NumericalInstabilityError) Error() string {
	valStr := ""
	for i, v := range e.Values {
		if i > 0 {
			valStr += ", "
		}
		if i >= 5 {
			valStr += "..."
			break
		}
		valStr += fmt.Sprintf("%.6g", v)
	}
	return fmt.Sprintf("mcgo: numerical instability detected in %s at iteration %d. Values: [%s]",
		e.Operation, e.Iteration, valStr)
}

// NewNumericalInstabilityError は新しいNumericalInstabilityErrorを作成します。
func NewNumericalInstabilityError(operation string, values []float64, iteration int) error {
	err := &NumericalInstabilityError{
		Operation: operation,
		Values:    values,
		Iteration: iteration,
	}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	共通エラー変数
//
// ===========================================================================

var (
	// ErrEmptyData は空のデータが渡された場合のエラーです。
	ErrEmptyData = New("empty data")

	// ErrSingularMatrix は特異行列の場合のエラーです。
	ErrSingularMatrix = New("singular matrix")
)
