package handlers

// somente os campos do contrato; active é opcional e default true no servidor
type CreateFarmerDTO struct {
	FullName  string `json:"fullName"`
	CPF       string `json:"cpf"`
	BirthDate string `json:"birthDate,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Active    *bool  `json:"active,omitempty"`
}

// Update parcial; ponteiros distinguem "omitido" de "informado".
// CPF fica de fora de propósito: com DecodeStrict, mandar "cpf" vira 400.
type UpdateFarmerProfileDTO struct {
	FullName  *string `json:"fullName,omitempty"`
	BirthDate *string `json:"birthDate,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Active    *bool   `json:"active,omitempty"`
}
