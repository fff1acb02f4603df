// File: services/student/credentials.go
package student

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"classadmin/models"
	"classadmin/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const passwordAlphabet = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"
const generatedPasswordLength = 12

// IssuePortalCredential creates (or rotates) a student's learning-portal
// login. The plaintext password is returned exactly once; only the bcrypt
// hash is stored.
func (s *DefaultStudentService) IssuePortalCredential(ctx context.Context, studentID string) (*models.PortalCredential, string, error) {
	logger := utils.GetLogger()

	st, err := s.Repo.GetByID(ctx, studentID)
	if err != nil {
		return nil, "", fmt.Errorf("student not found: %w", err)
	}

	password, err := generatePassword(generatedPasswordLength)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate password: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	cred := models.PortalCredential{
		Username:     portalUsername(st),
		PasswordHash: string(hash),
		IssuedAt:     time.Now(),
	}
	if err := s.Repo.UpdateWithDocument(ctx, studentID, map[string]any{"portal": cred}); err != nil {
		return nil, "", fmt.Errorf("failed to store portal credential: %w", err)
	}

	logger.Info("Portal credential issued",
		zap.String("studentID", studentID),
		zap.String("username", cred.Username))
	return &cred, password, nil
}

// portalUsername keeps an existing username stable across password resets.
func portalUsername(st *models.Student) string {
	if st.Portal != nil && st.Portal.Username != "" {
		return st.Portal.Username
	}
	local := st.Email
	if at := strings.Index(local, "@"); at > 0 {
		local = local[:at]
	}
	return strings.ToLower(local)
}

func generatePassword(length int) (string, error) {
	var b strings.Builder
	max := big.NewInt(int64(len(passwordAlphabet)))
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b.WriteByte(passwordAlphabet[n.Int64()])
	}
	return b.String(), nil
}
