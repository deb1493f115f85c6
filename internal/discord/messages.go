package discord

// Friendly message constants for Discord responses
const (
	// Crops
	MsgCropNotFound    = "❓ **Crop Not Found**\nMaybe check the spelling?"
	MsgNoEligibleCrops = "🌱 No crop fits your effort and level yet."

	// Input
	MsgInvalidLandSize = "📐 **Unknown Land Size**\nPick small, medium or large."
	MsgInvalidInput    = "⚠️ **Invalid Value**\nValues can't be negative."
	MsgNothingToUpdate = "⚠️ Give at least one setting to change."

	// System
	MsgAPIUnavailable = "🔌 **Planner Unavailable**\nThe farm planner can't be reached right now."
	MsgGenericError   = "❌ Something went wrong."
)

// Embed colors
const (
	ColorRanking  = 0x2ecc71
	ColorDetail   = 0x3498db
	ColorPrice    = 0xf39c12
	ColorSettings = 0x9b59b6
)

// FooterFarmCalc is the standard embed footer
const FooterFarmCalc = "FarmCalc"

// Ranking list bounds
const (
	DefaultRankingLimit = 10
	MaxRankingLimit     = 25
)

// ProfilePrefix namespaces Discord users among API profiles
const ProfilePrefix = "discord-"
