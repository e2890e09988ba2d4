package market

import "CoinPulse/internal/domain/models"

func supply(v float64) *float64 { return &v }

// defaultCatalog is the built-in top-10 asset snapshot, valued in the
// base currency. It stands in for a live markets endpoint; monetary
// fields are converted per request, never mutated here.
var defaultCatalog = []models.Asset{
	{
		ID: "bitcoin", Name: "Bitcoin", Symbol: "btc",
		Image:        "https://assets.coingecko.com/coins/images/1/large/bitcoin.png",
		CurrentPrice: 52000, MarketCap: 1.02e12, MarketCapRank: 1,
		TotalVolume: 2.8e10, CirculatingSupply: 1.96e7, TotalSupply: 2.1e7,
		MaxSupply: supply(2.1e7), PriceChange24h: 1.2, PriceChange7d: 4.5,
	},
	{
		ID: "ethereum", Name: "Ethereum", Symbol: "eth",
		Image:        "https://assets.coingecko.com/coins/images/279/large/ethereum.png",
		CurrentPrice: 2900, MarketCap: 3.48e11, MarketCapRank: 2,
		TotalVolume: 1.5e10, CirculatingSupply: 1.2e8, TotalSupply: 1.2e8,
		PriceChange24h: 2.1, PriceChange7d: 6.3,
	},
	{
		ID: "tether", Name: "Tether", Symbol: "usdt",
		Image:        "https://assets.coingecko.com/coins/images/325/large/Tether.png",
		CurrentPrice: 1.0, MarketCap: 9.8e10, MarketCapRank: 3,
		TotalVolume: 4.2e10, CirculatingSupply: 9.8e10, TotalSupply: 9.8e10,
		PriceChange24h: 0.01, PriceChange7d: -0.02,
	},
	{
		ID: "binancecoin", Name: "BNB", Symbol: "bnb",
		Image:        "https://assets.coingecko.com/coins/images/825/large/bnb-icon2_2x.png",
		CurrentPrice: 360, MarketCap: 5.5e10, MarketCapRank: 4,
		TotalVolume: 1.1e9, CirculatingSupply: 1.53e8, TotalSupply: 1.53e8,
		MaxSupply: supply(2.0e8), PriceChange24h: -0.8, PriceChange7d: 2.2,
	},
	{
		ID: "solana", Name: "Solana", Symbol: "sol",
		Image:        "https://assets.coingecko.com/coins/images/4128/large/solana.png",
		CurrentPrice: 110, MarketCap: 4.8e10, MarketCapRank: 5,
		TotalVolume: 2.4e9, CirculatingSupply: 4.4e8, TotalSupply: 5.7e8,
		PriceChange24h: 5.6, PriceChange7d: 12.4,
	},
	{
		ID: "ripple", Name: "XRP", Symbol: "xrp",
		Image:        "https://assets.coingecko.com/coins/images/44/large/xrp-symbol-white-128.png",
		CurrentPrice: 0.54, MarketCap: 2.9e10, MarketCapRank: 6,
		TotalVolume: 1.3e9, CirculatingSupply: 5.4e10, TotalSupply: 1.0e11,
		MaxSupply: supply(1.0e11), PriceChange24h: -1.4, PriceChange7d: -3.1,
	},
	{
		ID: "usd-coin", Name: "USDC", Symbol: "usdc",
		Image:        "https://assets.coingecko.com/coins/images/6319/large/usdc.png",
		CurrentPrice: 1.0, MarketCap: 2.6e10, MarketCapRank: 7,
		TotalVolume: 5.8e9, CirculatingSupply: 2.6e10, TotalSupply: 2.6e10,
		PriceChange24h: 0.0, PriceChange7d: 0.01,
	},
	{
		ID: "cardano", Name: "Cardano", Symbol: "ada",
		Image:        "https://assets.coingecko.com/coins/images/975/large/cardano.png",
		CurrentPrice: 0.58, MarketCap: 2.0e10, MarketCapRank: 8,
		TotalVolume: 4.5e8, CirculatingSupply: 3.5e10, TotalSupply: 4.5e10,
		MaxSupply: supply(4.5e10), PriceChange24h: 3.2, PriceChange7d: -1.8,
	},
	{
		ID: "dogecoin", Name: "Dogecoin", Symbol: "doge",
		Image:        "https://assets.coingecko.com/coins/images/5/large/dogecoin.png",
		CurrentPrice: 0.085, MarketCap: 1.2e10, MarketCapRank: 9,
		TotalVolume: 6.2e8, CirculatingSupply: 1.42e11, TotalSupply: 1.42e11,
		PriceChange24h: 7.8, PriceChange7d: 15.2,
	},
	{
		ID: "tron", Name: "TRON", Symbol: "trx",
		Image:        "https://assets.coingecko.com/coins/images/1094/large/tron-logo.png",
		CurrentPrice: 0.11, MarketCap: 9.7e9, MarketCapRank: 10,
		TotalVolume: 3.4e8, CirculatingSupply: 8.8e10, TotalSupply: 8.8e10,
		PriceChange24h: 0.9, PriceChange7d: 2.7,
	},
}
