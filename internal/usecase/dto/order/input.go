package orderdto

type CreateFlashOrderInput struct {
	UserID            string
	ProductID         string
	Note              string
	Signature         string
	AgreementAccepted bool
}

type AdminAddOrderInput struct {
	UserID    string
	ProductID string
	Note      string
}

type SplitOrderInput struct {
	OrderID string
	Parts   int
}

type AssignOrderInput struct {
	OrderID  string
	Assignee string
}
