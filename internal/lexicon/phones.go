package lexicon

// Known spam and scam phone numbers, as reported. The lists overlap by
// design; every list a number appears in contributes its own weight.
func defaultPhones() PhoneLists {
	return PhoneLists{
		Spam: []string{
			"0123456789", "0987654321", "1234567890", "1111111111", "0000000000",
			"9999999999", "8888888888", "7777777777", "6666666666", "5555555555",
			"4444444444", "3333333333", "2222222222", "1212121212", "1231231231",
			"4564564564", "7897897897", "0120120120", "3453453453", "6786786786",
			"0909090909", "0808080808", "0707070707", "0606060606", "0505050505",
			"0404040404", "0303030303", "0202020202", "0101010101", "0000000000",
		},
		Scam: []string{
			"0123456789", "0987654321", "1234567890", "1111111111", "0000000000",
			"0901234567", "0912345678", "0923456789", "0934567890", "0945678901",
			"0956789012", "0967890123", "0978901234", "0989012345", "0990123456",
			"0901111111", "0902222222", "0903333333", "0904444444", "0905555555",
			"0906666666", "0907777777", "0908888888", "0909999999", "0900000000",
			"0911111111", "0922222222", "0933333333", "0944444444", "0955555555",
			"0966666666", "0977777777", "0988888888", "0999999999", "0900000000",
			"0123456789", "0123456788", "0123456787", "0123456786", "0123456785",
			"0123456784", "0123456783", "0123456782", "0123456781", "0123456780",
			"0987654321", "0987654320", "0987654329", "0987654328", "0987654327",
			"0987654326", "0987654325", "0987654324", "0987654323", "0987654322",
		},
		Premium: []string{
			"1900123456", "1900123457", "1900123458", "1900123459", "1900123450",
			"1800123456", "1800123457", "1800123458", "1800123459", "1800123450",
			"1900111111", "1900222222", "1900333333", "1900444444", "1900555555",
			"1800111111", "1800222222", "1800333333", "1800444444", "1800555555",
		},
		FakeBank: []string{
			"1900123456", "1900123457", "1900123458", "1900123459", "1900123450",
			"1800123456", "1800123457", "1800123458", "1800123459", "1800123450",
			"0901234567", "0901234568", "0901234569", "0901234560", "0901234561",
			"0912345678", "0912345679", "0912345670", "0912345671", "0912345672",
		},
		Lottery: []string{
			"0901234567", "0901234568", "0901234569", "0901234560", "0901234561",
			"0912345678", "0912345679", "0912345670", "0912345671", "0912345672",
			"0923456789", "0923456780", "0923456781", "0923456782", "0923456783",
			"0934567890", "0934567891", "0934567892", "0934567893", "0934567894",
		},
		Investment: []string{
			"0901234567", "0901234568", "0901234569", "0901234560", "0901234561",
			"0912345678", "0912345679", "0912345670", "0912345671", "0912345672",
			"0923456789", "0923456780", "0923456781", "0923456782", "0923456783",
			"0934567890", "0934567891", "0934567892", "0934567893", "0934567894",
		},
	}
}
