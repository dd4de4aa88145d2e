package domain

// MarketState describes the broad risk environment derived from the benchmark index.
type MarketState string

const (
	MarketRiskOn  MarketState = "RISK-ON"
	MarketRiskOff MarketState = "RISK-OFF"
	MarketUnknown MarketState = "UNKNOWN"
)

// FundamentalState is the outcome of the fundamental quality gate.
type FundamentalState string

const (
	FundamentalPass    FundamentalState = "PASS"
	FundamentalNeutral FundamentalState = "NEUTRAL"
	FundamentalFail    FundamentalState = "FAIL"
)

// TrendState classifies the strength of the prevailing trend.
type TrendState string

const (
	TrendStrong     TrendState = "STRONG"
	TrendDeveloping TrendState = "DEVELOPING"
	TrendAbsent     TrendState = "ABSENT"
)

// EntryState classifies entry timing. EntryNA means the trend score was too
// low for entry conditions to be meaningful.
type EntryState string

const (
	EntryOK   EntryState = "OK"
	EntryWait EntryState = "WAIT"
	EntryNo   EntryState = "NO"
	EntryNA   EntryState = "N/A"
)

// RSState classifies 20-bar relative strength versus the benchmark.
type RSState string

const (
	RSStrong  RSState = "STRONG"
	RSNeutral RSState = "NEUTRAL"
	RSWeak    RSState = "WEAK"
	RSNA      RSState = "N/A"
)

// Behavior labels institutional behavior. Failure takes priority over
// expansion; continuation is the default.
type Behavior string

const (
	BehaviorContinuation Behavior = "CONTINUATION"
	BehaviorExpansion    Behavior = "EXPANSION"
	BehaviorFailure      Behavior = "FAILURE"
)

// TradeStatus represents the lifecycle state of a paper trade.
type TradeStatus string

const (
	StatusOpen   TradeStatus = "OPEN"
	StatusClosed TradeStatus = "CLOSED"
)

// TradeOutcome is the result classification of a closed trade.
type TradeOutcome string

const (
	OutcomeWin     TradeOutcome = "WIN"
	OutcomeLoss    TradeOutcome = "LOSS"
	OutcomeNoMove  TradeOutcome = "NO-MOVE"
	OutcomePending TradeOutcome = "PENDING"
)

// ExitReason indicates which exit rule closed a trade.
type ExitReason string

const (
	ExitTargetHit       ExitReason = "TARGET_HIT"
	ExitStopLoss        ExitReason = "STOP_LOSS"
	ExitBehaviorFailure ExitReason = "BEHAVIOR_FAILURE"
	ExitMaxHoldingDays  ExitReason = "MAX_HOLDING_DAYS"
	ExitPending         ExitReason = "PENDING"
)

// Check is a three-valued boolean used for fundamental criteria: a check can
// pass, fail, or be unknown because the underlying data was not provided.
// Unknown is deliberately distinct from a failed check.
type Check string

const (
	CheckTrue    Check = "True"
	CheckFalse   Check = "False"
	CheckUnknown Check = "None"
)

// CheckOf converts an evaluated boolean into a Check.
func CheckOf(v bool) Check {
	if v {
		return CheckTrue
	}
	return CheckFalse
}
