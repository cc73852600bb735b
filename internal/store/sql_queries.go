package store

const (
	createUser = `INSERT INTO users (id, name, email, role, password_hash)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, name, email, role, password_hash, created_at;`

	findUserByEmail = `SELECT id, name, email, role, password_hash, reset_password_token, reset_password_expires, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT id, name, email, role, password_hash, reset_password_token, reset_password_expires, created_at
    FROM users
    WHERE id = $1;`

	findUserByResetToken = `SELECT id, name, email, role, password_hash, reset_password_token, reset_password_expires, created_at
    FROM users
    WHERE reset_password_token = $1 AND reset_password_expires > NOW();`

	updateUser = `UPDATE users
    SET name = $2, email = $3
    WHERE id = $1
    RETURNING id, name, email, role, password_hash, created_at;`

	updateUserPassword = `UPDATE users
    SET password_hash = $2, reset_password_token = NULL, reset_password_expires = NULL
    WHERE id = $1;`

	setUserResetSecret = `UPDATE users
    SET reset_password_token = $2, reset_password_expires = to_timestamp($3)
    WHERE id = $1;`

	clearUserResetSecret = `UPDATE users
    SET reset_password_token = NULL, reset_password_expires = NULL
    WHERE id = $1;`

	deleteUser = `DELETE FROM users WHERE id = $1;`
)

const (
	insertApplicant = `INSERT INTO job_applicants (job_id, user_id, resume)
    VALUES ($1, $2, $3);`

	listApplicants = `SELECT job_id, user_id, resume, applied_at
    FROM job_applicants
    WHERE job_id = $1;`

	jobStatsByTopic = `SELECT UPPER(experience) AS experience,
        COUNT(*) AS total_jobs,
        AVG(positions) AS avg_positions,
        AVG(salary) AS avg_salary,
        MIN(salary) AS min_salary,
        MAX(salary) AS max_salary
    FROM jobs
    WHERE search_vector @@ phraseto_tsquery('english', $1)
    GROUP BY UPPER(experience);`
)
