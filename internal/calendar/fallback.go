package calendar

import (
	"time"

	"CoinPulse/internal/domain/models"
)

type fallbackSeed struct {
	id, title, description string
	date, created          string
	category               models.EventCategory
	coins                  []string
}

// fallbackSeeds is the static dataset served when the live provider is
// unreachable or no credential is configured.
var fallbackSeeds = []fallbackSeed{
	{
		id:    "1",
		title: "Bitcoin Halving",
		description: "The fourth Bitcoin halving will cut the miner reward " +
			"in half, from 6.25 to 3.125 BTC per block.",
		date: "2024-04-20T00:00:00Z", created: "2023-10-15T10:30:00Z",
		category: models.CategoryHalving, coins: []string{"bitcoin"},
	},
	{
		id:    "2",
		title: "Ethereum Cancun-Deneb Upgrade",
		description: "Ethereum's Cancun-Deneb upgrade will bring significant " +
			"improvements in scalability and efficiency.",
		date: "2024-05-21T00:00:00Z", created: "2023-12-10T14:15:00Z",
		category: models.CategoryFork, coins: []string{"ethereum"},
	},
	{
		id:    "3",
		title: "Solana Breakpoint Conference",
		description: "Solana's annual Breakpoint conference will bring together " +
			"developers, investors and enthusiasts from around the world.",
		date: "2024-06-15T00:00:00Z", created: "2024-01-05T09:45:00Z",
		category: models.CategoryConference, coins: []string{"solana"},
	},
	{
		id:    "4",
		title: "Cardano Vasil Hard Fork",
		description: "Cardano's Vasil hard fork aims to improve network " +
			"performance and introduce new features for developers.",
		date: "2024-07-10T00:00:00Z", created: "2024-02-20T16:20:00Z",
		category: models.CategoryFork, coins: []string{"cardano"},
	},
	{
		id:    "5",
		title: "Binance Coin Burn",
		description: "Binance will perform its quarterly BNB burn, reducing " +
			"total supply and potentially increasing the token's value.",
		date: "2024-07-15T00:00:00Z", created: "2024-03-01T11:05:00Z",
		category: models.CategoryRelease, coins: []string{"binancecoin"},
	},
	{
		id:    "6",
		title: "Polkadot Parachain Auctions",
		description: "A new round of parachain auctions on Polkadot, letting " +
			"new projects secure a slot on the network.",
		date: "2024-08-01T00:00:00Z", created: "2024-03-15T13:40:00Z",
		category: models.CategoryRelease, coins: []string{"polkadot"},
	},
	{
		id:    "7",
		title: "Chainlink Staking v0.2",
		description: "Launch of Chainlink staking v0.2, allowing LINK holders " +
			"to take part in securing the network.",
		date: "2024-08-15T00:00:00Z", created: "2024-04-05T08:25:00Z",
		category: models.CategoryRelease, coins: []string{"chainlink"},
	},
	{
		id:    "8",
		title: "Litecoin Listed on Major Exchange",
		description: "Litecoin will be listed on a new major exchange, " +
			"increasing its liquidity and accessibility.",
		date: "2024-09-01T00:00:00Z", created: "2024-04-20T15:10:00Z",
		category: models.CategoryListing, coins: []string{"litecoin"},
	},
	{
		id:    "9",
		title: "Ripple Partnership Announcement",
		description: "Ripple will announce a new major partnership with an " +
			"international financial institution for the use of XRP.",
		date: "2024-09-15T00:00:00Z", created: "2024-05-01T10:55:00Z",
		category: models.CategoryPartnership, coins: []string{"ripple"},
	},
	{
		id:    "10",
		title: "Dogecoin Community Airdrop",
		description: "The Dogecoin community will run an airdrop to celebrate " +
			"the anniversary of the meme cryptocurrency's creation.",
		date: "2024-12-06T00:00:00Z", created: "2024-05-10T12:30:00Z",
		category: models.CategoryAirdrop, coins: []string{"dogecoin"},
	},
}

// Fallback returns the static event dataset with IsUpcoming computed
// against now, mirroring what normalization does for live data.
func Fallback(now time.Time) []models.CalendarEvent {
	out := make([]models.CalendarEvent, 0, len(fallbackSeeds))
	for _, s := range fallbackSeeds {
		date, _ := time.Parse(time.RFC3339, s.date)
		created, _ := time.Parse(time.RFC3339, s.created)
		out = append(out, models.CalendarEvent{
			ID:          s.id,
			Title:       s.title,
			Description: s.description,
			Date:        date,
			Category:    s.category,
			Coins:       s.coins,
			Image:       placeholderImage,
			IsUpcoming:  date.After(now),
			CreatedAt:   created,
		})
	}
	return out
}
