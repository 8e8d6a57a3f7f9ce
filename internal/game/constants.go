package game

// Purchase kinds reported in item.purchased events.
const (
	PurchaseKindCoin     = "coin"
	PurchaseKindTicket   = "ticket"
	PurchaseKindTalisman = "talisman"
)

// Player-facing spin messages.
const (
	MsgSpinNoWin      = "No win this time"
	MsgSpinWin        = "Winner!"
	MsgSpinJackpot    = "JACKPOT!"
	MsgCurseProtected = "The curse breaks against your talisman"
	MsgCurseAbsorbed  = "The curse is absorbed"
	MsgCurseShielded  = "Your shield shatters, but holds"
	MsgCurseSynergy   = "The skulls pay tribute"
	MsgCurseWiped     = "The curse takes everything"
	MsgBonusRespin    = "The dynamo whirs - spin again!"
)

// Log messages
const (
	LogMsgSaveFailed        = "Failed to persist session, continuing"
	LogMsgResultFailed      = "Failed to record leaderboard result"
	LogMsgEligibilityFailed = "Failed to fetch talisman eligibility, allowing all"
)
