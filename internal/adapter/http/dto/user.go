package dto

type UserForm struct {
	FirstName string `form:"first_name" binding:"required,max=150"`
	LastName  string `form:"last_name" binding:"required,max=150"`
	Username  string `form:"username" binding:"required,max=150,username"`
	Password1 string `form:"password1" binding:"required,min=3"`
	Password2 string `form:"password2" binding:"required,eqfield=Password1"`
}

type LoginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type UserRow struct {
	ID        uint64
	Username  string
	FullName  string
	CreatedAt string
}
