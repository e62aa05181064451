package categorize

// DefaultRules returns the built-in keyword table. Order is significant:
// a vendor containing several keywords resolves to the earliest entry.
func DefaultRules() []Rule {
	return []Rule{
		// Shopping
		{"myntra", "Shopping"},
		{"amazon", "Shopping"},
		{"flipkart", "Shopping"},
		{"ajio", "Shopping"},
		{"meesho", "Shopping"},
		{"reliance", "Shopping"},
		{"shopperstop", "Shopping"},
		{"nykaa", "Shopping"},
		{"tatacliq", "Shopping"},
		{"paytmmall", "Shopping"},
		{"snapdeal", "Shopping"},
		{"firstcry", "Shopping"},
		{"decathlon", "Shopping"},
		{"lifestyle", "Shopping"},
		{"maxfashion", "Shopping"},
		{"pepperfry", "Shopping"},
		{"ikea", "Shopping"},

		// Food and cafes
		{"swiggy", "Food"},
		{"zomato", "Food"},
		{"dominos", "Food"},
		{"pizzahut", "Food"},
		{"kfc", "Food"},
		{"mcdonalds", "Food"},
		{"burgerking", "Food"},
		{"subway", "Food"},
		{"bbq", "Food"},
		{"eatfit", "Food"},
		{"cafe", "Cafe"},
		{"starbucks", "Cafe"},
		{"barista", "Cafe"},
		{"costa", "Cafe"},
		{"chaayos", "Cafe"},
		{"cool", "Cafe"},
		{"sweets", "Food"},

		// Groceries
		{"blinkit", "Groceries"},
		{"bigbasket", "Groceries"},
		{"grofers", "Groceries"},
		{"dmart", "Groceries"},
		{"reliancefresh", "Groceries"},
		{"more", "Groceries"},
		{"spencers", "Groceries"},
		{"naturebasket", "Groceries"},
		{"dairy", "Groceries"},
		{"groceries", "Groceries"},

		// Travel
		{"ola", "Travel"},
		{"uber", "Travel"},
		{"redbus", "Travel"},
		{"irctc", "Travel"},
		{"yatra", "Travel"},
		{"makemytrip", "Travel"},
		{"cleartrip", "Travel"},
		{"ixigo", "Travel"},
		{"goibibo", "Travel"},
		{"indigo", "Travel"},
		{"spicejet", "Travel"},
		{"airindia", "Travel"},
		{"vistara", "Travel"},
		{"travel", "Travel"},

		// Utilities and telecom
		{"jio", "Bill Payments"},
		{"airtel", "Bill Payments"},
		{"vodafone", "Bill Payments"},
		{"idea", "Bill Payments"},
		{"bsnl", "Bill Payments"},
		{"electricity", "Bill Payments"},
		{"gas", "Bill Payments"},
		{"water", "Bill Payments"},
		{"tatapower", "Bill Payments"},
		{"adanipower", "Bill Payments"},
		{"mseb", "Bill Payments"},

		// Entertainment
		{"hudle", "Entertainment"},
		{"bookmyshow", "Entertainment"},
		{"hotstar", "Entertainment"},
		{"netflix", "Entertainment"},
		{"sony", "Entertainment"},
		{"prime", "Entertainment"},
		{"zee", "Entertainment"},
		{"voot", "Entertainment"},
		{"sunnxt", "Entertainment"},
		{"erosnow", "Entertainment"},
		{"gaana", "Entertainment"},
		{"spotify", "Entertainment"},
		{"wynk", "Entertainment"},
		{"youtube", "Entertainment"},

		// Banks and wallets
		{"bank", WalletTopUp},
		{"icici", WalletTopUp},
		{"sbi", WalletTopUp},
		{"hdfc", WalletTopUp},
		{"axis", WalletTopUp},
		{"kotak", WalletTopUp},
		{"yesbank", WalletTopUp},
		{"idfc", WalletTopUp},
		{"federal", WalletTopUp},
		{"bob", WalletTopUp},
		{"paytm", WalletTopUp},
		{"phonepe", WalletTopUp},
		{"googlepay", WalletTopUp},
		{"freecharge", WalletTopUp},
		{"mobikwik", WalletTopUp},

		// Savings and investments
		{"jar", "Savings"},
		{"automatic", "Savings"},
		{"payment", "Savings"},
		{"sip", "Investments"},
		{"mutualfund", "Investments"},
		{"zerodha", "Investments"},
		{"groww", "Investments"},
		{"upstox", "Investments"},
		{"sharekhan", "Investments"},

		// Health
		{"nursing", "Hospital"},
		{"hospital", "Medical"},
		{"apollo", "Medical"},
		{"fortis", "Medical"},
		{"max", "Medical"},
		{"aiims", "Medical"},
		{"medplus", "Medical"},
		{"pharmeasy", "Medical"},
		{"1mg", "Medical"},
		{"netmeds", "Medical"},
		{"pharmacy", "Medical"},
		{"medical", "Medical"},

		// Other
		{"cash", "Cash"},
		{"recharge", "Recharges"},
		{"dth", "Recharges"},
		{"fastag", "Toll/Transport"},
		{"insurance", "Insurance"},
		{"lic", "Insurance"},
		{"bajaj", "Insurance"},
		{"tataaig", "Insurance"},
		{"iciciprudential", "Insurance"},
	}
}

// DefaultTags returns the "#tag" hints recognized on the line that follows a
// UPI amount, in match order.
func DefaultTags() []Rule {
	return []Rule{
		{"food", "Food"},
		{"groceries", "Groceries"},
		{"travel", "Travel"},
		{"bill", "Bills"},
		{"medical", "Medical"},
		{"services", "Services"},
		{"miscellaneous", "Miscellaneous"},
		{"transfer", "Transfers"},
		{"savings", "Savings"},
	}
}
