package model

import "time"

// BasicUserInfo is the logged-in user's identity record.
type BasicUserInfo struct {
	ID            string    `json:"id"`
	URL           string    `json:"url"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	EmailVerified bool      `json:"email_verified"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	IDInfo        string    `json:"id_info"`
	CreatedAt     time.Time `json:"created_at"`
}

// AccountHolderInfo holds the account holder's personal details.
type AccountHolderInfo struct {
	User               string    `json:"user"`
	PhoneNumber        string    `json:"phone_number"`
	Address            string    `json:"address"`
	City               string    `json:"city"`
	State              string    `json:"state"`
	Zipcode            string    `json:"zipcode"`
	CountryOfResidence string    `json:"country_of_residence"`
	Citizenship        string    `json:"citizenship"`
	DateOfBirth        string    `json:"date_of_birth"`
	MaritalStatus      string    `json:"marital_status"`
	NumberDependents   int       `json:"number_dependents"`
	TaxIDSSN           string    `json:"tax_id_ssn"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// AccountHolderAffiliation lists the holder's regulatory affiliations.
type AccountHolderAffiliation struct {
	User                               string    `json:"user"`
	ControlPerson                      bool      `json:"control_person"`
	ControlPersonSecuritySymbol        string    `json:"control_person_security_symbol"`
	ObjectToDisclosure                 bool      `json:"object_to_disclosure"`
	SecurityAffiliatedEmployee         bool      `json:"security_affiliated_employee"`
	SecurityAffiliatedFirmRelationship string    `json:"security_affiliated_firm_relationship"`
	SecurityAffiliatedFirmName         string    `json:"security_affiliated_firm_name"`
	SecurityAffiliatedPersonName       string    `json:"security_affiliated_person_name"`
	SecurityAffiliatedAddress          string    `json:"security_affiliated_address"`
	StockLoanConsentStatus             string    `json:"stock_loan_consent_status"`
	SweepConsent                       bool      `json:"sweep_consent"`
	UpdatedAt                          time.Time `json:"updated_at"`
}

// AccountHolderEmployment is the holder's employment record.
type AccountHolderEmployment struct {
	User             string    `json:"user"`
	EmploymentStatus string    `json:"employment_status"`
	Occupation       string    `json:"occupation"`
	EmployerName     string    `json:"employer_name"`
	EmployerAddress  string    `json:"employer_address"`
	EmployerCity     string    `json:"employer_city"`
	EmployerState    string    `json:"employer_state"`
	EmployerZipcode  string    `json:"employer_zipcode"`
	YearsEmployed    int       `json:"years_employed"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// AccountHolderInvestment is the holder's investment profile. Income and
// net worth come back as bracket labels such as "25000_39999".
type AccountHolderInvestment struct {
	User                          string    `json:"user"`
	AnnualIncome                  string    `json:"annual_income"`
	TotalNetWorth                 string    `json:"total_net_worth"`
	LiquidNetWorth                string    `json:"liquid_net_worth"`
	InvestmentExperience          string    `json:"investment_experience"`
	InvestmentExperienceCollected bool      `json:"investment_experience_collected"`
	InvestmentObjective           string    `json:"investment_objective"`
	RiskTolerance                 string    `json:"risk_tolerance"`
	LiquidityNeeds                string    `json:"liquidity_needs"`
	SourceOfFunds                 string    `json:"source_of_funds"`
	TaxBracket                    string    `json:"tax_bracket"`
	TimeHorizon                   string    `json:"time_horizon"`
	SuitabilityVerified           bool      `json:"suitability_verified"`
	UpdatedAt                     time.Time `json:"updated_at"`
}
