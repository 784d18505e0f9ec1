package company

type CompanyResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"company_name"`
	Liked bool   `json:"liked"`
}

type CompanyBatchResponse struct {
	Companies []CompanyResponse `json:"companies"`
	Total     int64             `json:"total"`
}

func NewCompanyResponse(c LikedCompany) CompanyResponse {
	return CompanyResponse{
		ID:    c.ID,
		Name:  c.Name,
		Liked: c.Liked,
	}
}
