package services

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"net/smtp"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"stayhub/config"
	"stayhub/models"
)

type UserInfo struct {
	UserId uint `json:"userid"`
	Role   int  `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

func generateVerificationCode() (string, error) {
	code := ""

	for i := 0; i < 6; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		code += n.String()
	}

	return code, nil
}

func sendMail(to string, subject string, htmlBody string) error {
	from := config.GetEnv("SMTP_FROM")
	password := config.GetEnv("SMTP_PASSWORD")
	host := config.GetEnv("SMTP_HOST")
	port := config.GetEnv("SMTP_PORT")

	if host == "" {
		// Mail is optional in local setups
		return nil
	}
	if port == "" {
		port = "587"
	}

	msg := []byte("MIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n" +
		"Subject: " + subject + "\r\n\r\n" + htmlBody)

	auth := smtp.PlainAuth("", from, password, host)
	return smtp.SendMail(host+":"+port, auth, from, []string{to}, msg)
}

func sendVerificationEmail(email string, code string) error {
	body := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<title>Verification code</title>
		</head>
		<body>
			<p>Hello %s,</p>
			<p>We received a request for a one-time code for your account.</p>
			<p>Your one-time code is: <strong>%s</strong></p>
			<p>If you did not request this code you can safely ignore this email. Someone else may have entered your address by mistake.</p>
			<p>Thanks,<br>The accounts team</p>
		</body>
		</html>
	`, email, code)

	return sendMail(email, "Your one-time code", body)
}

// SendBookingEmail mails the guest their confirmation details after a booking
// is created
func SendBookingEmail(email string, code string, propertyName string, checkIn string, checkOut string, totalAmount float64) error {
	body := fmt.Sprintf(`<!DOCTYPE html>
	<html>
	<head>
		<meta charset="UTF-8">
		<title>Booking received</title>
	</head>
	<body>
		<p>Hello,</p>
		<p>Your booking request has been received.</p>
		<p>Booking details:</p>
		<ul>
			<li>Confirmation code: <strong>%s</strong></li>
			<li>Property: <strong>%s</strong></li>
			<li>Check-in: <strong>%s</strong></li>
			<li>Check-out: <strong>%s</strong></li>
			<li>Total: <strong>%s</strong></li>
		</ul>
		<p>We will let you know as soon as the host confirms your stay.</p>
		<p>Thanks for booking with us!</p>
	</body>
	</html>`, code, propertyName, checkIn, checkOut, formatCurrency(totalAmount))

	return sendMail(email, "Booking received", body)
}

func formatCurrency(amount float64) string {
	return fmt.Sprintf("$%0.2f", amount)
}

func GetUserByEmail(email string) (models.User, error) {
	var user models.User
	result := config.DB.Where("email = ?", email).First(&user)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return user, fmt.Errorf("no user found with email %s", email)
	}

	if result.Error != nil {
		return user, result.Error
	}

	return user, nil
}

func GetUserByPhoneNumber(phoneNumber string) (models.User, error) {
	var user models.User
	result := config.DB.Where("phone_number = ?", phoneNumber).First(&user)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return user, fmt.Errorf("no user found with phone number %s", phoneNumber)
	}

	if result.Error != nil {
		return user, result.Error
	}

	return user, nil
}

func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

var secretKey = []byte(config.GetEnv("SECRET_KEY_ACCESS_TOKEN"))
var refreshSecretKey = []byte(config.GetEnv("SECRET_KEY_REFRESH_TOKEN"))

func GenerateToken(userInfo UserInfo, expiryMinutes int, isAccessToken bool) (string, error) {
	claims := &Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Minute * time.Duration(expiryMinutes)).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	var secretKeyToUse []byte
	if isAccessToken {
		secretKeyToUse = secretKey
	} else {
		secretKeyToUse = refreshSecretKey
	}

	return token.SignedString(secretKeyToUse)
}

func SetTokenCookies(c *gin.Context, accessToken string) {
	c.SetCookie(
		"access_token",
		accessToken,
		3*24*60*60,
		"/",
		"",
		true,
		false,
	)
}

func CreateUser(input models.User) (models.User, error) {
	if input.Email == "" || input.Password == "" {
		return models.User{}, errors.New("email and password are required")
	}

	existingEmail, err := GetUserByEmail(input.Email)
	if err == nil {
		return models.User{}, fmt.Errorf("email %s is already in use", existingEmail.Email)
	}

	if input.PhoneNumber != "" {
		existingPhone, err := GetUserByPhoneNumber(input.PhoneNumber)
		if err == nil {
			return models.User{}, fmt.Errorf("phone number %s is already in use", existingPhone.PhoneNumber)
		}
	}

	hashedPassword, err := HashPassword(input.Password)
	if err != nil {
		return models.User{}, err
	}

	code, err := generateVerificationCode()
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Name:          input.Name,
		Email:         input.Email,
		Password:      hashedPassword,
		PhoneNumber:   input.PhoneNumber,
		IsVerified:    false,
		Code:          code,
		CodeCreatedAt: time.Now(),
		Role:          input.Role,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	result := config.DB.Create(&user)
	if result.Error != nil {
		return user, result.Error
	}

	if err := sendVerificationEmail(user.Email, code); err != nil {
		return user, err
	}

	return user, nil
}

func RegenerateVerificationCode(userID uint) error {
	var user models.User
	result := config.DB.First(&user, userID)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("no user found with id %d", userID)
	}

	if result.Error != nil {
		return result.Error
	}

	newCode, err := generateVerificationCode()
	if err != nil {
		return fmt.Errorf("could not generate a new verification code: %v", err)
	}

	user.Code = newCode
	user.CodeCreatedAt = time.Now()

	if err := config.DB.Save(&user).Error; err != nil {
		return fmt.Errorf("could not store the new verification code: %v", err)
	}

	if err := sendVerificationEmail(user.Email, newCode); err != nil {
		return fmt.Errorf("could not send the verification email: %v", err)
	}

	return nil
}

func CreateGoogleUser(name, email, avatar string) (models.User, error) {
	existingEmail, err := GetUserByEmail(email)
	if err == nil {
		return models.User{}, fmt.Errorf("email %s is already in use", existingEmail.Email)
	}

	user := models.User{
		Name:       name,
		Email:      email,
		Password:   "",
		Avatar:     avatar,
		IsVerified: true,
		Role:       0,
	}

	result := config.DB.Create(&user)
	if result.Error != nil {
		return user, result.Error
	}

	return user, nil
}

// UpdatePropertyRating recomputes a property's average star rating and review
// count from its reviews
func UpdatePropertyRating(propertyID uint) error {
	var reviews []models.Review
	if err := config.DB.Where("property_id = ?", propertyID).Find(&reviews).Error; err != nil {
		return err
	}

	var totalStars int
	for _, review := range reviews {
		totalStars += review.Star
	}

	var average float64
	if len(reviews) > 0 {
		average = float64(totalStars) / float64(len(reviews))
	}

	return config.DB.Model(&models.Property{}).
		Where("id = ?", propertyID).
		Updates(map[string]interface{}{
			"rating":       average,
			"review_count": len(reviews),
		}).Error
}
