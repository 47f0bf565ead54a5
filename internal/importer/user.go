package importer

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"

	"github.com/SalimElheni1/quran-association-manager-sub001/internal/models"
	"github.com/SalimElheni1/quran-association-manager-sub001/internal/repository"
	"github.com/SalimElheni1/quran-association-manager-sub001/internal/workbook"
)

// processUserRow validates one account row. New accounts get a generated
// matricule and a one-time temporary password; the user row and its role
// assignment are written in a single transaction, so an unresolvable role
// leaves nothing behind.
func (imp *Importer) processUserRow(ctx context.Context, row []string, mapping workbook.FieldMapping) (RowOutcome, error) {
	et := workbook.EntityUser
	matricule := mapping.Cell(row, workbook.FieldMatricule)

	if matricule != "" {
		existing, err := imp.repos.User.GetByMatricule(ctx, matricule)
		if err != nil {
			return RowOutcome{}, err
		}
		if existing == nil {
			return failed(notFound(workbook.FieldMatricule, "المستخدم", matricule)), nil
		}
		if rowErr := applyUserRow(existing, row, mapping); rowErr != nil {
			return failed(rowErr), nil
		}
		if err := imp.repos.User.Update(ctx, existing); err != nil {
			if errors.Is(err, repository.ErrRoleNotFound) {
				return failed(notFound(workbook.FieldRole, "الدور", existing.Role)), nil
			}
			return RowOutcome{}, err
		}
		return RowOutcome{Matricule: matricule}, nil
	}

	user := &models.User{Status: models.StatusActive}
	if rowErr := applyUserRow(user, row, mapping); rowErr != nil {
		return failed(rowErr), nil
	}
	if user.Username == "" {
		return failed(missingField(et, workbook.FieldUsername)), nil
	}
	if user.FullName == "" {
		return failed(missingField(et, workbook.FieldFullName)), nil
	}
	if user.Role == "" {
		return failed(missingField(et, workbook.FieldRole)), nil
	}

	taken, err := imp.repos.User.UsernameExists(ctx, user.Username)
	if err != nil {
		return RowOutcome{}, err
	}
	if taken {
		return failed(&RowError{
			Kind:    KindDuplicate,
			Field:   workbook.FieldUsername,
			Message: fmt.Sprintf("اسم المستخدم \"%s\" مستعمل مسبقا", user.Username),
		}), nil
	}

	password, err := generatePassword()
	if err != nil {
		return RowOutcome{}, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return RowOutcome{}, err
	}
	user.PasswordHash = string(hash)

	user.Matricule, err = imp.nextMatricule(ctx, et)
	if err != nil {
		return RowOutcome{}, err
	}

	if err := imp.repos.User.CreateWithRole(ctx, user); err != nil {
		// The transaction rolled back: record the row failure and move on.
		if errors.Is(err, repository.ErrRoleNotFound) {
			return failed(notFound(workbook.FieldRole, "الدور", user.Role)), nil
		}
		return RowOutcome{}, err
	}

	return RowOutcome{
		Matricule:  user.Matricule,
		Created:    true,
		Credential: &models.Credential{Username: user.Username, Password: password},
	}, nil
}

func applyUserRow(u *models.User, row []string, mapping workbook.FieldMapping) *RowError {
	et := workbook.EntityUser

	if v := mapping.Cell(row, workbook.FieldUsername); v != "" {
		u.Username = v
	}
	if v := mapping.Cell(row, workbook.FieldFullName); v != "" {
		u.FullName = v
	}
	if v := mapping.Cell(row, workbook.FieldEmail); v != "" {
		u.Email = v
	}
	if v := mapping.Cell(row, workbook.FieldRole); v != "" {
		role, ok := NormalizeRole(v)
		if !ok {
			return invalidValue(et, workbook.FieldRole, v)
		}
		u.Role = role
	}
	if v := mapping.Cell(row, workbook.FieldStatus); v != "" {
		status, ok := NormalizeStatus(v)
		if !ok {
			return invalidValue(et, workbook.FieldStatus, v)
		}
		u.Status = status
	}
	return nil
}

const passwordAlphabet = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"
const passwordLength = 12

// generatePassword builds a temporary password from an unambiguous
// alphabet. It is surfaced exactly once in the import report; only the
// bcrypt hash is stored.
func generatePassword() (string, error) {
	buf := make([]byte, passwordLength)
	max := big.NewInt(int64(len(passwordAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate password: %w", err)
		}
		buf[i] = passwordAlphabet[n.Int64()]
	}
	return string(buf), nil
}
