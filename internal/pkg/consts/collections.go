package consts

const (
	BeneficiariesCollection       = "Beneficiaries"
	LoansCollection               = "Loans"
	RepaymentsCollection          = "Repayments"
	ConsumptionRecordsCollection  = "ConsumptionRecords"
	CreditScoresCollection        = "CreditScores"
	LendingApplicationsCollection = "LendingApplications"
)
