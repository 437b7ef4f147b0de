package validators

type ShopRegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"omitempty,phone_number"`
	Password string `json:"password" validate:"required,strong_password"`
	Address  string `json:"address" validate:"omitempty,max=255"`
}

type ShopLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func ValidateShopRegister(req *ShopRegisterRequest) ValidationErrors {
	return ValidateStruct(req)
}
