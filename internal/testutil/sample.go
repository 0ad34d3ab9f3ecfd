package testutil

// SampleRows is a realistic one-month statement: card purchases with and
// without bonuses, person-to-person transfers, and a salary replenishment.
// The second row's details are long enough to wrap onto a second line in the
// rendered document.
var SampleRows = []Row{
	{"31.01.2026", "-30000.00 KZT", "Transfer", "Receiver: 440043******8791"},
	{"30.01.2026", "-5490.00 KZT", "Purchase", "MAGNUM CASH&CARRY, JSC Halyk Bank, MCC: 5411, APPLE PAY"},
	{"30.01.2026", "-3200.00 KZT", "Purchase", "WOLT, MCC: 5814"},
	{"29.01.2026", "-1500.00 KZT", "Purchase with bonuses", "Glovo KZ, MCC: 5812"},
	{"29.01.2026", "-12000.00 KZT", "Transfer", "Receiver: 524821******1234"},
	{"28.01.2026", "-2100.00 KZT", "Purchase", "MARWIN, MCC: 5977"},
	{"28.01.2026", "-890.00 KZT", "Purchase", "Kaspi Magazin, Kaspi Bank, MCC: 5943"},
	{"27.01.2026", "-4500.00 KZT", "Purchase", "Arbuz.kz, MCC: 5411"},
	{"27.01.2026", "-15000.00 KZT", "Purchase", "Technodom, MCC: 5311"},
	{"26.01.2026", "-7800.00 KZT", "Purchase", "Yandex Go, MCC: 4121"},
	{"26.01.2026", "-3500.00 KZT", "Purchase", "PetCity, MCC: 5995"},
	{"25.01.2026", "112950.86 KZT", "Account replenishment", "Salary"},
	{"25.01.2026", "-2200.00 KZT", "Purchase", "Europharma, MCC: 5912"},
	{"24.01.2026", "-8900.00 KZT", "Purchase", "ZARA, MCC: 5691"},
	{"24.01.2026", "-6500.00 KZT", "Purchase", "Shell, MCC: 5541"},
	{"23.01.2026", "-1200.00 KZT", "Purchase with bonuses", "Burger King, MCC: 5814"},
	{"23.01.2026", "-4300.00 KZT", "Purchase", "Dostyk Plaza, MCC: 5311"},
	{"22.01.2026", "-950.00 KZT", "Purchase", "Chocolife, MCC: 7941"},
	{"22.01.2026", "-3800.00 KZT", "Purchase", "Wildberries, MCC: 5262"},
	{"21.01.2026", "-5000.00 KZT", "Transfer", "Receiver: 400012******5678"},
}
